package config

import (
	"sort"
	"time"
)

// Presets are named starting points for common classroom setups. A config
// file loaded on top of a preset overrides it.
var Presets = map[string]*Config{
	"classroom": {
		Category: "mechanical", Theme: "eduvision", View: "dashboard", Seed: 1, FPS: 20,
		Delays: DelayConfig{Mount: 1500 * time.Millisecond, Select: 1000 * time.Millisecond},
		Viewer: ViewerConfig{Rotating: true, Zoom: 1.0, Tab: "overview"},
	},
	"lecture": {
		Category: "biological", Theme: "ocean", View: "dashboard", Seed: 7, FPS: 15,
		Delays: DelayConfig{Mount: 1500 * time.Millisecond, Select: 1000 * time.Millisecond},
		Viewer: ViewerConfig{Rotating: false, Zoom: 1.5, ShowDimensions: true, Tab: "details"},
	},
	"kiosk": {
		Category: "mechanical", Theme: "retro", View: "dashboard", Seed: 3, FPS: 30,
		Delays: DelayConfig{Mount: 500 * time.Millisecond, Select: 300 * time.Millisecond},
		Viewer: ViewerConfig{Rotating: true, Zoom: 1.2, Tab: "specs"},
	},
	"lab": {
		Category: "biological", Theme: "minimal", View: "models", Seed: 11, FPS: 20,
		Delays: DelayConfig{Mount: 1500 * time.Millisecond, Select: 1000 * time.Millisecond},
		Viewer: ViewerConfig{Rotating: true, Zoom: 1.0, ShowDimensions: true, Tab: "specs"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
