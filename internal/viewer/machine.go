package viewer

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/eduvision/internal/catalog"
)

// Machine translates discrete user actions into viewer state transitions.
type Machine struct {
	state  State
	delays Delays
	gen    uint64
	// pending is the ticket whose completion will clear Loading.
	pending Ticket
}

// Option configures a Machine in New.
type Option func(*Machine)

// WithDelays overrides the simulated load latency. Non-positive fields keep
// their defaults.
func WithDelays(d Delays) Option {
	return func(m *Machine) {
		if d.Mount > 0 {
			m.delays.Mount = d.Mount
		}
		if d.Select > 0 {
			m.delays.Select = d.Select
		}
	}
}

// WithInitial seeds rotation, zoom, overlay and tab. Loading and the model
// selection are always derived from the category.
func WithInitial(rotating bool, zoom float64, showDimensions bool, tab Tab) Option {
	return func(m *Machine) {
		m.state.Rotating = rotating
		m.state.Zoom = clampZoom(zoom)
		m.state.ShowDimensions = showDimensions
		if tab.valid() {
			m.state.Tab = tab
		}
	}
}

// New mounts a viewer on category c and returns the ticket for its initial
// load.
func New(c catalog.Category, opts ...Option) (*Machine, Ticket) {
	m := &Machine{
		delays: DefaultDelays(),
		state: State{
			Rotating: true,
			Zoom:     DefaultZoom,
			Tab:      Overview,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, m.enterCategory(c)
}

// State returns a copy of the current viewer state.
func (m *Machine) State() State { return m.state }

// Entry returns the catalog record of the selected model.
func (m *Machine) Entry() catalog.Entry {
	e, _ := catalog.For(m.state.Category).Lookup(m.state.ModelID)
	return e
}

// Catalog returns the catalog of the active category.
func (m *Machine) Catalog() catalog.Catalog { return catalog.For(m.state.Category) }

// Pending returns the ticket that is currently allowed to finish loading.
func (m *Machine) Pending() (Ticket, bool) {
	return m.pending, m.state.Loading
}

// SetCategory switches the active catalog, resets the selection to its
// default entry and restarts the load.
func (m *Machine) SetCategory(c catalog.Category) Ticket {
	return m.enterCategory(c)
}

// Select makes id the current model and restarts the load. Ids outside the
// active catalog are rejected and leave the state untouched.
func (m *Machine) Select(id string) (Ticket, error) {
	if !catalog.For(m.state.Category).Contains(id) {
		return Ticket{}, fmt.Errorf("%w: %q in %s", ErrNotInCatalog, id, m.state.Category)
	}
	m.state.ModelID = id
	return m.startLoad(m.delays.Select), nil
}

// Step moves the selection by delta positions within the active catalog,
// wrapping at both ends.
func (m *Machine) Step(delta int) Ticket {
	cat := catalog.For(m.state.Category)
	n := len(cat.Entries)
	i := cat.Index(m.state.ModelID)
	next := ((i+delta)%n + n) % n
	t, _ := m.Select(cat.Entries[next].ID)
	return t
}

// Complete finishes the load identified by t. It returns false, and changes
// nothing, when t has been superseded by a later load.
func (m *Machine) Complete(t Ticket) bool {
	if !m.state.Loading || t.Gen != m.pending.Gen {
		return false
	}
	m.state.Loading = false
	return true
}

// ToggleRotation flips auto-rotation. It is ignored while a model is loading.
func (m *Machine) ToggleRotation() bool {
	if m.state.Loading {
		return false
	}
	m.state.Rotating = !m.state.Rotating
	return true
}

// ZoomIn raises the zoom one step. It reports false at the upper bound.
func (m *Machine) ZoomIn() bool {
	if m.state.Zoom >= MaxZoom {
		return false
	}
	m.state.Zoom = clampZoom(m.state.Zoom + ZoomStep)
	return true
}

// ZoomOut lowers the zoom one step. It reports false at the lower bound.
func (m *Machine) ZoomOut() bool {
	if m.state.Zoom <= MinZoom {
		return false
	}
	m.state.Zoom = clampZoom(m.state.Zoom - ZoomStep)
	return true
}

// ToggleDimensions flips the dimensions overlay in any state.
func (m *Machine) ToggleDimensions() {
	m.state.ShowDimensions = !m.state.ShowDimensions
}

// SelectTab switches the info tab. Unknown tabs return ErrUnknownTab.
func (m *Machine) SelectTab(t Tab) error {
	if !t.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTab, int(t))
	}
	m.state.Tab = t
	return nil
}

func (m *Machine) enterCategory(c catalog.Category) Ticket {
	m.state.Category = c
	m.state.ModelID = catalog.For(c).Default().ID
	return m.startLoad(m.delays.Mount)
}

func (m *Machine) startLoad(delay time.Duration) Ticket {
	m.gen++
	m.state.Loading = true
	m.pending = Ticket{Gen: m.gen, ModelID: m.state.ModelID, Delay: delay}
	return m.pending
}

// clampZoom keeps z inside [MinZoom, MaxZoom] and on the 0.1 grid so repeated
// steps do not drift.
func clampZoom(z float64) float64 {
	z = math.Round(z*10) / 10
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
