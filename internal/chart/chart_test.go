package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/san-kum/eduvision/internal/catalog"
)

func TestShares(t *testing.T) {
	tests := []struct {
		cat   catalog.Category
		first string
	}{
		{catalog.Mechanical, "45%"},
		{catalog.Biological, "50%"},
	}
	for _, tt := range tests {
		out := ansi.Strip(Shares(catalog.Effectiveness(tt.cat), 40))
		lines := strings.Split(out, "\n")
		if len(lines) != 3 {
			t.Fatalf("%s: expected 3 bars, got %d", tt.cat, len(lines))
		}
		if !strings.HasPrefix(lines[0], "Visualization") {
			t.Errorf("%s: expected first bar to be Visualization, got %q", tt.cat, lines[0])
		}
		if !strings.HasSuffix(lines[0], tt.first) {
			t.Errorf("%s: expected %s, got %q", tt.cat, tt.first, lines[0])
		}
	}
}

func TestSharesEmpty(t *testing.T) {
	if Shares(nil, 40) != "" {
		t.Error("expected no output without shares")
	}
}

func TestTrend(t *testing.T) {
	out := Trend(catalog.Engagement(catalog.Mechanical), 30, 6, "minutes per week")
	if !strings.Contains(out, "minutes per week") {
		t.Error("expected caption in plot")
	}
	if len(strings.Split(out, "\n")) < 6 {
		t.Errorf("expected at least 6 rows:\n%s", out)
	}
	if Trend(nil, 30, 6, "") != "" {
		t.Error("expected no plot for an empty series")
	}
}
