// Package chart renders the analytics panel: share bars for the learning
// method breakdown and an asciigraph line for weekly engagement.
package chart

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viz"
)

const labelWidth = 14

// Shares renders one bar per slice. width is the full line width in cells.
func Shares(shares []catalog.Share, width int) string {
	total := 0.0
	for _, s := range shares {
		total += s.Value
	}
	if total <= 0 {
		return ""
	}
	bar := width - labelWidth - 6
	if bar < 4 {
		bar = 4
	}
	lines := make([]string, len(shares))
	for i, s := range shares {
		lines[i] = viz.PadCell(s.Name, labelWidth) + " " +
			viz.ProgressBar(s.Value/total, bar) + " " + viz.Percent(s.Value/total*100)
	}
	return strings.Join(lines, "\n")
}

// Trend plots series with asciigraph. An empty series renders nothing.
func Trend(series []float64, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(max(height, 2)),
		asciigraph.Width(max(width, len(series))),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(series, opts...)
}
