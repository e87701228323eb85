package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce coalesces the burst of events editors produce on save.
var WatchDebounce = 250 * time.Millisecond

// Watch reloads path on top of base whenever it changes and reports the
// result to onChange. A config that fails to parse or validate is reported
// as an error with a nil config. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, base *Config, onChange func(*Config, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace the file rather than write it, so watch the
	// directory and filter by name.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Stop()
				timer.Reset(WatchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadInto(base, abs)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				onChange(nil, err)
				continue
			}
			onChange(cfg, nil)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, err)
		}
	}
}
