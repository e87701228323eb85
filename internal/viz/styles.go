package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Shared styles. SetTheme rebuilds them from the active palette.
var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Body        lipgloss.Style
	Highlight   lipgloss.Style
	Badge       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	KeyHint     lipgloss.Style
	ModelStroke lipgloss.Style
	ToastBox    lipgloss.Style
	StatusOK    lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusError lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	Body = lipgloss.NewStyle().Foreground(t.Text)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	Badge = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Secondary).
		Padding(0, 1)
	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Underline(true).
		Padding(0, 1)
	TabInactive = lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
	NavActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Background(t.Primary).
		Padding(0, 1)
	NavInactive = lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	ModelStroke = lipgloss.NewStyle().Foreground(t.Model)
	ToastBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)
	StatusOK = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	StatusWarn = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	StatusError = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
}

// BoxWithTitle renders content inside a panel of the given outer width with
// the title on the first line.
func BoxWithTitle(title, content string, width int) string {
	inner := width - Panel.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "…")
	}
	body := Title.Render(ansi.Truncate(title, inner, "…")) + "\n" + strings.Join(lines, "\n")
	return Panel.Width(inner + Panel.GetHorizontalPadding()).Render(body)
}

func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// ProgressBar renders a bar of width cells filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Highlight.Render(strings.Repeat("█", filled)) + Subtle.Render(strings.Repeat("░", width-filled))
}

// PadCell pads or cuts s to exactly w terminal cells. Wide runes count
// twice.
func PadCell(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

// KeyValue renders an aligned "label  value" line.
func KeyValue(label, value string, labelWidth int) string {
	return Subtle.Render(PadCell(label, labelWidth)) + " " + Body.Render(value)
}

// Percent formats a share value for the analytics panel.
func Percent(v float64) string {
	return fmt.Sprintf("%3.0f%%", v)
}
