package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/eduvision/internal/catalog"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 2.0
	ZoomStep    = 0.1
	DefaultZoom = 1.0

	DefaultMountDelay  = 1500 * time.Millisecond
	DefaultSelectDelay = 1000 * time.Millisecond
)

// Tab is the active section of the info panel.
type Tab int

const (
	Overview Tab = iota
	Specs
	Details
)

// Tabs lists the info tabs in display order.
func Tabs() []Tab { return []Tab{Overview, Specs, Details} }

func (t Tab) String() string {
	switch t {
	case Overview:
		return "Overview"
	case Specs:
		return "Specs"
	case Details:
		return "Details"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

func (t Tab) valid() bool { return t >= Overview && t <= Details }

// ParseTab accepts a tab name, case-insensitively.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overview":
		return Overview, nil
	case "specs", "specifications":
		return Specs, nil
	case "details":
		return Details, nil
	}
	return Overview, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// State is a snapshot of the viewer. Machine hands out copies.
type State struct {
	Loading        bool
	Category       catalog.Category
	ModelID        string
	Rotating       bool
	Zoom           float64
	ShowDimensions bool
	Tab            Tab
}

// Ready reports whether the current model has finished loading.
func (s State) Ready() bool { return !s.Loading }

func (s State) String() string {
	return fmt.Sprintf("{loading:%t category:%s model:%s rotating:%t zoom:%.1f dims:%t tab:%s}",
		s.Loading, s.Category, s.ModelID, s.Rotating, s.Zoom, s.ShowDimensions, s.Tab)
}

// Ticket identifies one simulated load. Gen increases with every load the
// machine starts.
type Ticket struct {
	Gen     uint64
	ModelID string
	Delay   time.Duration
}

// Delays configures the simulated load latency.
type Delays struct {
	Mount  time.Duration
	Select time.Duration
}

// DefaultDelays returns the 1500ms mount and 1000ms select latency.
func DefaultDelays() Delays {
	return Delays{Mount: DefaultMountDelay, Select: DefaultSelectDelay}
}
