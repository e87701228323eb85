package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the dashboard palette.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	// Model is the wireframe stroke, also used for SVG snapshots.
	Model lipgloss.Color
}

var (
	ThemeEduvision = Theme{
		Name:      "eduvision",
		Primary:   lipgloss.Color("#9b87f5"), // lavender
		Secondary: lipgloss.Color("#7e69ab"),
		Accent:    lipgloss.Color("#d6bcfa"),
		Text:      lipgloss.Color("#f4f1ff"),
		Muted:     lipgloss.Color("#8e8aa3"),
		Border:    lipgloss.Color("#4b3f72"),
		Success:   lipgloss.Color("#4ade80"),
		Warning:   lipgloss.Color("#facc15"),
		Error:     lipgloss.Color("#f87171"),
		Model:     lipgloss.Color("#b9a6ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#1d4e6e"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Model:     lipgloss.Color("#5fd4f4"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Border:    lipgloss.Color("#555555"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Model:     lipgloss.Color("#dddddd"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#007700"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Model:     lipgloss.Color("#33ff33"),
	}

	CurrentTheme = ThemeEduvision

	Themes = []Theme{
		ThemeEduvision,
		ThemeOcean,
		ThemeMinimal,
		ThemeRetro,
	}
)

// LookupTheme finds a theme by name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns a theme by name, falling back to eduvision.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeEduvision
}

// SetTheme changes the current theme and rebuilds the shared styles.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
