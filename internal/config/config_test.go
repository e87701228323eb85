package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viewer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Category != "mechanical" {
		t.Errorf("expected category mechanical, got %s", cfg.Category)
	}
	if cfg.Delays.Mount != 1500*time.Millisecond {
		t.Errorf("expected 1500ms mount delay, got %s", cfg.Delays.Mount)
	}
	if cfg.Delays.Select != time.Second {
		t.Errorf("expected 1s select delay, got %s", cfg.Delays.Select)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduvision.yaml")
	data := []byte("category: brain\ndelays:\n  select: 250ms\nviewer:\n  zoom: 1.5\n  tab: specs\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CategoryValue() != catalog.Biological {
		t.Errorf("expected biological, got %s", cfg.CategoryValue())
	}
	if cfg.Delays.Select != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Delays.Select)
	}
	if cfg.Delays.Mount != 1500*time.Millisecond {
		t.Errorf("mount delay should keep its default, got %s", cfg.Delays.Mount)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme should keep its default, got %s", cfg.Theme)
	}
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduvision.yaml")
	if err := os.WriteFile(path, []byte("theme: minimal\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("lecture")
	cfg, err := LoadInto(base, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "minimal" {
		t.Errorf("expected minimal, got %s", cfg.Theme)
	}
	if cfg.Category != "biological" {
		t.Errorf("expected preset category, got %s", cfg.Category)
	}
	if base.Theme != "ocean" {
		t.Error("base should not be modified")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("kiosk")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"category", func(c *Config) { c.Category = "chemistry" }},
		{"theme", func(c *Config) { c.Theme = "cyberpunk" }},
		{"zoom low", func(c *Config) { c.Viewer.Zoom = 0.4 }},
		{"zoom high", func(c *Config) { c.Viewer.Zoom = 2.5 }},
		{"tab", func(c *Config) { c.Viewer.Tab = "history" }},
		{"delay", func(c *Config) { c.Delays.Select = -time.Second }},
		{"fps", func(c *Config) { c.FPS = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.View = "nowhere"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unknown view should be allowed: %v", err)
	}
}

func TestViewerOptions(t *testing.T) {
	cfg := GetPreset("lecture")
	m, ticket := viewer.New(cfg.CategoryValue(), cfg.ViewerOptions()...)
	st := m.State()

	if st.ModelID != "brain" {
		t.Errorf("expected brain, got %s", st.ModelID)
	}
	if st.Zoom != 1.5 || !st.ShowDimensions || st.Rotating {
		t.Errorf("unexpected initial state %s", st)
	}
	if st.Tab != viewer.Details {
		t.Errorf("expected details tab, got %s", st.Tab)
	}
	if ticket.Delay != 1500*time.Millisecond {
		t.Errorf("expected mount delay from config, got %s", ticket.Delay)
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 20
	if cfg.FrameInterval() != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %s", cfg.FrameInterval())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("kiosk")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Delays.Select != 300*time.Millisecond {
		t.Errorf("expected 300ms, got %s", cfg.Delays.Select)
	}
	cfg.Theme = "changed"
	if Presets["kiosk"].Theme != "retro" {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets should list every preset")
	}
}

func TestWatchReloads(t *testing.T) {
	old := WatchDebounce
	WatchDebounce = 20 * time.Millisecond
	defer func() { WatchDebounce = old }()

	path := filepath.Join(t.TempDir(), "eduvision.yaml")
	if err := os.WriteFile(path, []byte("theme: eduvision\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, DefaultConfig(), func(cfg *Config, err error) {
			if err == nil {
				changes <- cfg
			}
		})
	}()

	// The watcher may not be registered yet, so keep writing until it
	// notices.
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-changes:
			if cfg.Theme != "retro" {
				t.Fatalf("expected retro, got %s", cfg.Theme)
			}
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("theme: retro\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("watcher never reported the change")
		}
	}
}
