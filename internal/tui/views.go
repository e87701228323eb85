package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/chart"
	"github.com/san-kum/eduvision/internal/config"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

const (
	canvasHeight = 10
	trendHeight  = 5
)

func (m Model) View() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}

	var body string
	switch m.page {
	case pageModels:
		body = m.modelsView(w)
	case pageSettings:
		body = m.settingsView(w)
	case pageNotFound:
		body = m.notFoundView(w)
	default:
		body = m.dashboardView(w)
	}

	parts := []string{m.navbar(w), body}
	if t := m.toastView(); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, m.help.View(pageKeys{keyMap: m.keys, page: m.page}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) navbar(w int) string {
	items := []string{viz.Title.Render("◈ EduVision XR")}
	for i, p := range navPages {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == m.page {
			items = append(items, viz.NavActive.Render(label))
		} else {
			items = append(items, viz.NavInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, items[0], "  ", strings.Join(items[1:], " "))
	return bar + "\n" + viz.Separator(w)
}

func (m Model) dashboardView(w int) string {
	st := m.machine.State()

	var subjects []string
	for i, c := range catalog.Categories() {
		label := fmt.Sprintf("[%s] %s", []string{"m", "b"}[i], c.Title())
		if c == st.Category {
			subjects = append(subjects, viz.NavActive.Render(label))
		} else {
			subjects = append(subjects, viz.NavInactive.Render(label))
		}
	}
	selector := viz.Subtle.Render("Subject ") + strings.Join(subjects, " ")

	leftW := w * 3 / 5
	rightW := w - leftW

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.objectivesPanel(st.Category, rightW),
		m.featuresPanel(rightW),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.viewerPanel(leftW), right)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.analyticsPanel(st.Category, leftW),
		m.resourcesPanel(st.Category, rightW),
	)
	return lipgloss.JoinVertical(lipgloss.Left, selector, top, bottom)
}

func (m Model) viewerPanel(w int) string {
	st := m.machine.State()
	e := m.machine.Entry()
	inner := max(w-4, 8)

	var art string
	if st.Loading {
		msg := m.spinner.View() + " " + viz.Body.Render("Loading 3D model...")
		art = lipgloss.Place(inner, canvasHeight, lipgloss.Center, lipgloss.Center, msg)
	} else {
		mesh := m.mesh
		if mesh == nil {
			mesh, _ = viz.Scene(e.ID, rand.New(rand.NewSource(m.cfg.Seed)))
		}
		cam := *m.cam
		cam.Zoom = st.Zoom
		c := viz.NewCanvas(inner, canvasHeight)
		viz.DrawModel(c, mesh, &cam, st.ShowDimensions)
		caption := ""
		if st.ShowDimensions {
			caption = "Dimensions: " + e.Dimensions.String()
		}
		art = viz.Paint(c, viz.ModelStroke, caption)
	}

	rotation := viz.StatusWarn.Render("paused")
	if st.Rotating {
		rotation = viz.StatusOK.Render("rotating")
	}
	status := fmt.Sprintf("%s %s  %s %s  %s %s",
		viz.Subtle.Render("zoom"), viz.Body.Render(fmt.Sprintf("%.1fx", st.Zoom)),
		viz.Subtle.Render("view"), rotation,
		viz.Subtle.Render(strings.ToLower(e.LabelKind)), viz.Body.Render(e.Label))

	var tabs []string
	for _, t := range viewer.Tabs() {
		if t == st.Tab {
			tabs = append(tabs, viz.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, viz.TabInactive.Render(t.String()))
		}
	}
	text := e.Overview
	switch st.Tab {
	case viewer.Specs:
		text = e.Specs
	case viewer.Details:
		text = e.Details
	}
	info := lipgloss.NewStyle().Width(inner).Render(viz.Body.Render(text))

	title := e.Name + "  " + viz.Badge.Render(st.Category.Title())
	content := strings.Join([]string{art, status, strings.Join(tabs, ""), info}, "\n")
	return viz.BoxWithTitle(title, content, w)
}

func (m Model) objectivesPanel(c catalog.Category, w int) string {
	inner := max(w-6, 8)
	var lines []string
	for _, o := range catalog.Objectives(c) {
		wrapped := lipgloss.NewStyle().Width(inner).Render(o)
		lines = append(lines, viz.Highlight.Render("• ")+strings.ReplaceAll(wrapped, "\n", "\n  "))
	}
	return viz.BoxWithTitle("Learning Objectives", strings.Join(lines, "\n"), w)
}

func (m Model) featuresPanel(w int) string {
	var lines []string
	for _, f := range catalog.Features() {
		lines = append(lines, viz.Highlight.Render(f.Icon)+" "+viz.Body.Render(f.Title))
		lines = append(lines, "  "+viz.Subtle.Render(f.Description))
	}
	return viz.BoxWithTitle("AR Features", strings.Join(lines, "\n"), w)
}

func (m Model) analyticsPanel(c catalog.Category, w int) string {
	inner := max(w-4, 20)
	shares := chart.Shares(catalog.Effectiveness(c), inner)
	trend := chart.Trend(catalog.Engagement(c), inner-10, trendHeight, "minutes per student per week")
	content := viz.Subtle.Render("Learning method effectiveness") + "\n" + shares + "\n\n" + trend
	return viz.BoxWithTitle("Learning Analytics", content, w)
}

func (m Model) resourcesPanel(c catalog.Category, w int) string {
	var lines []string
	for _, r := range catalog.Resources(c) {
		lines = append(lines, viz.Highlight.Render("→ ")+viz.Body.Render(r.Title))
	}
	return viz.BoxWithTitle("Educational Resources", strings.Join(lines, "\n"), w)
}

func (m Model) settingsView(w int) string {
	cfg := m.cfg
	start := cfg.View
	if start == "" {
		start = config.DefaultView
	}
	rows := []string{
		viz.KeyValue("Subject", cfg.CategoryValue().Title(), 16),
		viz.KeyValue("Start page", start, 16),
		viz.KeyValue("Seed", fmt.Sprint(cfg.Seed), 16),
		viz.KeyValue("Frame rate", fmt.Sprintf("%d fps", cfg.FPS), 16),
		viz.KeyValue("Mount delay", cfg.Delays.Mount.String(), 16),
		viz.KeyValue("Select delay", cfg.Delays.Select.String(), 16),
		viz.KeyValue("Initial zoom", fmt.Sprintf("%.1fx", cfg.Viewer.Zoom), 16),
		"",
		viz.Title.Render("Theme"),
	}
	for _, name := range viz.ThemeNames() {
		if name == viz.CurrentTheme.Name {
			rows = append(rows, viz.Highlight.Render("● "+name))
		} else {
			rows = append(rows, viz.Subtle.Render("○ "+name))
		}
	}
	rows = append(rows, "", viz.KeyHint.Render("Press T to cycle themes. Edit the config file with --watch to apply changes live."))
	return viz.BoxWithTitle("Settings", strings.Join(rows, "\n"), w)
}

func (m Model) notFoundView(w int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		viz.Title.Render("404"),
		viz.Body.Render("Oops! Page not found"),
		viz.Subtle.Render(fmt.Sprintf("%q is not a page.", m.missing)),
		"",
		viz.Highlight.Render("Return to Dashboard")+viz.KeyHint.Render("  (enter)"),
	)
	return lipgloss.Place(w, 9, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) toastView() string {
	active := m.center.Active()
	if len(active) == 0 {
		return ""
	}
	var boxes []string
	for _, l := range active {
		boxes = append(boxes, viz.ToastBox.Render(viz.Title.Render(l.Toast.Title)+"\n"+viz.Body.Render(l.Toast.Description)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
