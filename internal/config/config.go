package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

const (
	DefaultCategory = "mechanical"
	DefaultTheme    = "eduvision"
	DefaultView     = "dashboard"
	DefaultFPS      = 20
	DefaultSeed     = 1
	MaxFPS          = 60
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Category string       `yaml:"category"`
	Theme    string       `yaml:"theme"`
	View     string       `yaml:"view"`
	Seed     int64        `yaml:"seed"`
	FPS      int          `yaml:"fps"`
	LogFile  string       `yaml:"log_file,omitempty"`
	Delays   DelayConfig  `yaml:"delays"`
	Viewer   ViewerConfig `yaml:"viewer"`
}

// DelayConfig is the simulated load latency. Values are Go durations such as
// "1500ms".
type DelayConfig struct {
	Mount  time.Duration `yaml:"mount"`
	Select time.Duration `yaml:"select"`
}

// ViewerConfig is the viewer state a session starts from.
type ViewerConfig struct {
	Rotating       bool    `yaml:"rotating"`
	Zoom           float64 `yaml:"zoom"`
	ShowDimensions bool    `yaml:"show_dimensions"`
	Tab            string  `yaml:"tab"`
}

func DefaultConfig() *Config {
	return &Config{
		Category: DefaultCategory,
		Theme:    DefaultTheme,
		View:     DefaultView,
		Seed:     DefaultSeed,
		FPS:      DefaultFPS,
		Delays: DelayConfig{
			Mount:  viewer.DefaultMountDelay,
			Select: viewer.DefaultSelectDelay,
		},
		Viewer: ViewerConfig{
			Rotating: true,
			Zoom:     viewer.DefaultZoom,
			Tab:      "overview",
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadInto(DefaultConfig(), path)
}

// LoadInto reads a YAML file on top of base. Keys missing from the file keep
// base's values. base is not modified.
func LoadInto(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field that the dashboard would otherwise reject at
// runtime. An unknown View is allowed; it routes to the not-found page.
func (c *Config) Validate() error {
	if _, err := catalog.ParseCategory(c.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, ok := viz.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, viz.ThemeNames())
	}
	if c.Viewer.Zoom < viewer.MinZoom || c.Viewer.Zoom > viewer.MaxZoom {
		return fmt.Errorf("%w: zoom %.2f outside [%.1f, %.1f]", ErrInvalid, c.Viewer.Zoom, viewer.MinZoom, viewer.MaxZoom)
	}
	if _, err := viewer.ParseTab(c.Viewer.Tab); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Delays.Mount < 0 || c.Delays.Select < 0 {
		return fmt.Errorf("%w: negative load delay", ErrInvalid)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [1, %d]", ErrInvalid, c.FPS, MaxFPS)
	}
	return nil
}

// CategoryValue returns the parsed category, falling back to mechanical.
func (c *Config) CategoryValue() catalog.Category {
	cat, err := catalog.ParseCategory(c.Category)
	if err != nil {
		return catalog.Mechanical
	}
	return cat
}

// ViewerOptions converts the config into state machine options.
func (c *Config) ViewerOptions() []viewer.Option {
	tab, err := viewer.ParseTab(c.Viewer.Tab)
	if err != nil {
		tab = viewer.Overview
	}
	return []viewer.Option{
		viewer.WithDelays(viewer.Delays{Mount: c.Delays.Mount, Select: c.Delays.Select}),
		viewer.WithInitial(c.Viewer.Rotating, c.Viewer.Zoom, c.Viewer.ShowDimensions, tab),
	}
}

// FrameInterval is the redraw period derived from FPS.
func (c *Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps < 1 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
