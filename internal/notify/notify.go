// Package notify carries fire-and-forget toast notifications from the
// dashboard to whatever surface displays them.
package notify

import (
	"log"
	"sync"
	"time"
)

const DefaultDuration = 2 * time.Second

type Toast struct {
	Title       string
	Description string
	Duration    time.Duration
}

// Notifier accepts toasts. Implementations must not block.
type Notifier interface {
	Notify(Toast)
}

// Discard drops every toast.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Toast) {}

// LogNotifier writes toasts to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(t Toast) {
	l := n.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("toast: %s: %s", t.Title, t.Description)
}

// Multi fans a toast out to several notifiers.
func Multi(ns ...Notifier) Notifier { return multi(ns) }

type multi []Notifier

func (m multi) Notify(t Toast) {
	for _, n := range m {
		n.Notify(t)
	}
}

// Live is a toast currently on screen.
type Live struct {
	ID      uint64
	Toast   Toast
	Expires time.Time
}

// Center keeps the toasts that are currently visible. Oldest toasts are
// evicted first once the limit is reached.
type Center struct {
	mu     sync.Mutex
	now    func() time.Time
	limit  int
	nextID uint64
	live   []Live
}

func NewCenter(limit int) *Center {
	if limit <= 0 {
		limit = 3
	}
	return &Center{now: time.Now, limit: limit}
}

// SetClock replaces the time source. Tests use it to expire toasts without
// sleeping.
func (c *Center) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Center) Notify(t Toast) {
	c.Push(t)
}

// Push adds t and returns its id so the caller can schedule a Dismiss.
func (c *Center) Push(t Toast) Live {
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	l := Live{ID: c.nextID, Toast: t, Expires: c.now().Add(t.Duration)}
	c.live = append(c.live, l)
	if len(c.live) > c.limit {
		c.live = c.live[len(c.live)-c.limit:]
	}
	return l
}

// Dismiss removes the toast with the given id, if it is still visible.
func (c *Center) Dismiss(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.live {
		if l.ID == id {
			c.live = append(c.live[:i], c.live[i+1:]...)
			return
		}
	}
}

// Active returns the unexpired toasts, oldest first, and prunes the rest.
func (c *Center) Active() []Live {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	kept := c.live[:0]
	for _, l := range c.live {
		if now.Before(l.Expires) {
			kept = append(kept, l)
		}
	}
	c.live = kept
	out := make([]Live, len(kept))
	copy(out, kept)
	return out
}

// Since returns the visible toasts pushed after id. The TUI uses it to
// schedule one dismiss tick per new toast.
func (c *Center) Since(after uint64) []Live {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Live
	for _, l := range c.live {
		if l.ID > after {
			out = append(out, l)
		}
	}
	return out
}
