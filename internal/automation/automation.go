// Package automation replays scripted tours against the viewer state
// machine, either on a virtual clock or in real time.
package automation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

const (
	ActionWait       = "wait"
	ActionSelect     = "select"
	ActionCategory   = "category"
	ActionRotate     = "rotate"
	ActionZoomIn     = "zoom_in"
	ActionZoomOut    = "zoom_out"
	ActionDimensions = "dimensions"
	ActionTab        = "tab"
	ActionSnapshot   = "snapshot"
)

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrEmptyTour     = errors.New("automation: tour has no steps")
	ErrMissingField  = errors.New("automation: missing field")
)

// Tour is a scripted walk through the dashboard.
type Tour struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Action   string        `yaml:"action"`
	Model    string        `yaml:"model,omitempty"`
	Category string        `yaml:"category,omitempty"`
	Tab      string        `yaml:"tab,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	// Repeat applies the action this many times. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

func (s Step) times() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// Frame is the viewer state observed after one step.
type Frame struct {
	Step     int
	Action   string
	At       time.Duration
	State    viewer.State
	Note     string
	Snapshot string
}

type frameJSON struct {
	Step           int     `json:"step"`
	Action         string  `json:"action"`
	AtMillis       int64   `json:"at_ms"`
	Loading        bool    `json:"loading"`
	Category       string  `json:"category"`
	Model          string  `json:"model"`
	Rotating       bool    `json:"rotating"`
	Zoom           float64 `json:"zoom"`
	ShowDimensions bool    `json:"show_dimensions"`
	Tab            string  `json:"tab"`
	Note           string  `json:"note,omitempty"`
	Snapshot       string  `json:"snapshot,omitempty"`
}

func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{
		Step:           f.Step,
		Action:         f.Action,
		AtMillis:       f.At.Milliseconds(),
		Loading:        f.State.Loading,
		Category:       f.State.Category.String(),
		Model:          f.State.ModelID,
		Rotating:       f.State.Rotating,
		Zoom:           f.State.Zoom,
		ShowDimensions: f.State.ShowDimensions,
		Tab:            f.State.Tab.String(),
		Note:           f.Note,
		Snapshot:       f.Snapshot,
	})
}

type Options struct {
	Delays viewer.Delays
	// Realtime runs load timers and waits on the wall clock.
	Realtime bool
	// Seed feeds the scene generator for snapshot steps.
	Seed int64
	// SnapshotWidth and SnapshotHeight are in terminal cells.
	SnapshotWidth  int
	SnapshotHeight int
	Logger         *log.Logger
}

func LoadTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTour(data)
}

func ParseTour(data []byte) (*Tour, error) {
	var tour Tour
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, err
	}
	if len(tour.Steps) == 0 {
		return nil, ErrEmptyTour
	}
	return &tour, nil
}

// clock abstracts how a run waits for simulated loads to finish.
type clock interface {
	// issue registers a new load ticket.
	issue(t viewer.Ticket)
	// wait lets d elapse, completing due loads on the way.
	wait(ctx context.Context, d time.Duration) error
	now() time.Duration
	// lock guards the machine against completions delivered concurrently.
	lock()
	unlock()
	stop()
}

// RunTour replays tour and returns one frame per step. On error the frames
// collected so far are returned alongside it.
func RunTour(ctx context.Context, tour *Tour, opts Options) ([]Frame, error) {
	if tour == nil || len(tour.Steps) == 0 {
		return nil, ErrEmptyTour
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	cat := catalog.Mechanical
	if tour.Category != "" {
		c, err := catalog.ParseCategory(tour.Category)
		if err != nil {
			return nil, fmt.Errorf("tour %q: %w", tour.Name, err)
		}
		cat = c
	}

	m, mount := viewer.New(cat, viewer.WithDelays(opts.Delays))
	var clk clock
	if opts.Realtime {
		clk = newWallClock(m)
	} else {
		clk = &virtualClock{m: m}
	}
	defer clk.stop()
	clk.issue(mount)

	r := &runner{m: m, clk: clk, opts: opts}
	frames := make([]Frame, 0, len(tour.Steps))
	for i, step := range tour.Steps {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		logger.Printf("tour %s: step %d/%d: %s", tour.Name, i+1, len(tour.Steps), step.Action)

		f, err := r.apply(ctx, step)
		if err != nil {
			return frames, fmt.Errorf("step %d: %w", i+1, err)
		}
		f.Step = i + 1
		f.Action = step.Action
		frames = append(frames, f)
	}
	return frames, nil
}

type runner struct {
	m    *viewer.Machine
	clk  clock
	opts Options
}

func (r *runner) apply(ctx context.Context, step Step) (Frame, error) {
	if step.Action == ActionWait {
		if err := r.clk.wait(ctx, step.Duration*time.Duration(step.times())); err != nil {
			return Frame{}, err
		}
		return r.frame(""), nil
	}

	r.clk.lock()
	defer r.clk.unlock()

	var note string
	for n := 0; n < step.times(); n++ {
		var err error
		note, err = r.once(step)
		if err != nil {
			return Frame{}, err
		}
	}
	f := Frame{At: r.clk.now(), State: r.m.State(), Note: note}
	if step.Action == ActionSnapshot {
		f.Snapshot = r.snapshot()
	}
	return f, nil
}

// once applies one repetition of step. The caller holds the clock lock.
func (r *runner) once(step Step) (string, error) {
	switch step.Action {
	case ActionSelect:
		if step.Model == "" {
			return "", fmt.Errorf("%w: model", ErrMissingField)
		}
		t, err := r.m.Select(step.Model)
		if err != nil {
			return "", err
		}
		r.clk.issue(t)
	case ActionCategory:
		c, err := catalog.ParseCategory(step.Category)
		if err != nil {
			return "", err
		}
		r.clk.issue(r.m.SetCategory(c))
	case ActionRotate:
		if !r.m.ToggleRotation() {
			return "rotation ignored while loading", nil
		}
	case ActionZoomIn:
		if !r.m.ZoomIn() {
			return "zoom at maximum", nil
		}
	case ActionZoomOut:
		if !r.m.ZoomOut() {
			return "zoom at minimum", nil
		}
	case ActionDimensions:
		r.m.ToggleDimensions()
	case ActionTab:
		t, err := viewer.ParseTab(step.Tab)
		if err != nil {
			return "", err
		}
		if err := r.m.SelectTab(t); err != nil {
			return "", err
		}
	case ActionSnapshot:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
	return "", nil
}

func (r *runner) frame(note string) Frame {
	r.clk.lock()
	defer r.clk.unlock()
	return Frame{At: r.clk.now(), State: r.m.State(), Note: note}
}

// snapshot draws the current model. A loading viewer has nothing to show.
func (r *runner) snapshot() string {
	st := r.m.State()
	if st.Loading {
		return ""
	}
	w, h := r.opts.SnapshotWidth, r.opts.SnapshotHeight
	if w <= 0 {
		w = 40
	}
	if h <= 0 {
		h = 16
	}
	mesh, _ := viz.Scene(st.ModelID, rand.New(rand.NewSource(r.opts.Seed)))
	cam := viz.NewCamera()
	cam.Zoom = st.Zoom
	c := viz.NewCanvas(w, h)
	viz.DrawModel(c, mesh, cam, st.ShowDimensions)
	return c.String()
}

// virtualClock advances only on wait steps, so runs are deterministic.
type virtualClock struct {
	m   *viewer.Machine
	at  time.Duration
	due time.Duration
	t   viewer.Ticket
	set bool
}

func (c *virtualClock) issue(t viewer.Ticket) {
	c.t, c.due, c.set = t, c.at+t.Delay, true
}

func (c *virtualClock) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.at += d
	if c.set && c.due <= c.at {
		c.m.Complete(c.t)
		c.set = false
	}
	return nil
}

func (c *virtualClock) now() time.Duration { return c.at }
func (c *virtualClock) lock()              {}
func (c *virtualClock) unlock()            {}
func (c *virtualClock) stop()              {}

// wallClock delivers completions from a viewer.Timer goroutine.
type wallClock struct {
	mu    sync.Mutex
	m     *viewer.Machine
	timer *viewer.Timer
	start time.Time
}

func newWallClock(m *viewer.Machine) *wallClock {
	return &wallClock{m: m, timer: viewer.NewTimer(), start: time.Now()}
}

func (c *wallClock) issue(t viewer.Ticket) {
	c.timer.Schedule(t, func(t viewer.Ticket) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.m.Complete(t)
	})
}

func (c *wallClock) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *wallClock) now() time.Duration { return time.Since(c.start) }
func (c *wallClock) lock()              { c.mu.Lock() }
func (c *wallClock) unlock()            { c.mu.Unlock() }
func (c *wallClock) stop()              { c.timer.Stop() }
