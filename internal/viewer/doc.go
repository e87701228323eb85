// Package viewer owns the transient UI state of the model viewer panel.
//
// A [Machine] holds one [State] for the lifetime of a viewer instance:
//
//   - which model is selected (always a member of the active catalog)
//   - whether the simulated model load is still in flight
//   - rotation, zoom, dimension overlay and the active info tab
//
// # Load tickets
//
// Mounting, switching category and selecting a model all start a simulated
// load. Each returns a [Ticket] carrying a generation number and a delay. The
// host schedules the delay however it likes (a Bubble Tea tick, a [Timer],
// a virtual clock) and hands the ticket back to [Machine.Complete] when it
// fires. Only the most recent ticket can clear the loading flag; completions
// for superseded tickets are dropped.
//
// # Thread Safety
//
// Machine is NOT safe for concurrent use. All transitions are expected on the
// single UI goroutine. [Timer] is safe to call from any goroutine but invokes
// its callback on the timer goroutine.
package viewer
