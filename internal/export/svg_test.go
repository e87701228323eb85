package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/eduvision/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	var buf bytes.Buffer
	if err := CanvasToSVG(&buf, c, viz.ThemeOcean, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(out, `width="16"`) || !strings.Contains(out, `height="16"`) {
		t.Errorf("expected a 16x16 document:\n%s", out)
	}
	if !strings.Contains(out, string(viz.ThemeOcean.Model)) {
		t.Error("expected the model colour in the group style")
	}
	if !strings.Contains(out, `cx="2" cy="2"`) || !strings.Contains(out, `cx="14" cy="14"`) {
		t.Errorf("unexpected circle positions:\n%s", out)
	}
}

func TestCanvasToSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := CanvasToSVG(&buf, viz.NewCanvas(4, 4), viz.ThemeMinimal, 4)
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("expected ErrEmptyCanvas, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an empty canvas")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCanvasToSVGWriteError(t *testing.T) {
	c := viz.NewCanvas(1, 1)
	c.Set(0, 0)
	if err := CanvasToSVG(failingWriter{}, c, viz.ThemeMinimal, 4); err == nil {
		t.Error("expected the write error to surface")
	}
}
