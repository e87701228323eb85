package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestCenterExpiry(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewCenter(3)
	c.SetClock(func() time.Time { return now })

	c.Notify(Toast{Title: "a", Duration: time.Second})
	c.Notify(Toast{Title: "b"})

	if got := len(c.Active()); got != 2 {
		t.Fatalf("expected 2 live toasts, got %d", got)
	}

	now = now.Add(1500 * time.Millisecond)
	active := c.Active()
	if len(active) != 1 || active[0].Toast.Title != "b" {
		t.Fatalf("expected only b to survive, got %+v", active)
	}

	now = now.Add(DefaultDuration)
	if got := len(c.Active()); got != 0 {
		t.Errorf("expected all toasts expired, got %d", got)
	}
}

func TestCenterLimitAndDismiss(t *testing.T) {
	c := NewCenter(2)
	first := c.Push(Toast{Title: "1"})
	c.Push(Toast{Title: "2"})
	third := c.Push(Toast{Title: "3"})

	active := c.Active()
	if len(active) != 2 || active[0].Toast.Title != "2" {
		t.Fatalf("expected oldest evicted, got %+v", active)
	}

	c.Dismiss(first.ID) // already evicted
	c.Dismiss(third.ID)
	active = c.Active()
	if len(active) != 1 || active[0].Toast.Title != "2" {
		t.Errorf("unexpected toasts after dismiss: %+v", active)
	}

	if got := c.Since(first.ID); len(got) != 1 {
		t.Errorf("expected 1 toast since first, got %d", len(got))
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := Multi(Discard, LogNotifier{Logger: log.New(&buf, "", 0)})
	n.Notify(Toast{Title: "Mechanical Engineering", Description: "Loading models."})
	if !strings.Contains(buf.String(), "Mechanical Engineering: Loading models.") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
