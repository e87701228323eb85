package tui

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/config"
	"github.com/san-kum/eduvision/internal/notify"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

type recorder struct{ toasts []notify.Toast }

func (r *recorder) Notify(t notify.Toast) { r.toasts = append(r.toasts, t) }

type fixture struct {
	m       Model
	toasts  *recorder
	logs    *bytes.Buffer
	copied  *[]string
	copyErr error
}

func newFixture(t *testing.T, mutate func(*config.Config)) *fixture {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	f := &fixture{toasts: &recorder{}, logs: &bytes.Buffer{}, copied: &[]string{}}
	f.m = New(Options{
		Config:   cfg,
		Notifier: f.toasts,
		Logger:   log.New(f.logs, "", 0),
		Clipboard: func(s string) error {
			if f.copyErr != nil {
				return f.copyErr
			}
			*f.copied = append(*f.copied, s)
			return nil
		},
	})
	t.Cleanup(func() { viz.SetTheme(config.DefaultTheme) })
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.m.Update(msg)
	f.m = next.(Model)
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (f *fixture) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = f.send(keyMsg(k))
	}
	return cmd
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// settle delivers the pending load completion, as the tick would.
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	ticket, loading := f.m.machine.Pending()
	require.True(t, loading, "expected a load in flight")
	f.send(loadedMsg{ticket: ticket})
	require.False(t, f.m.machine.State().Loading)
}

func (f *fixture) view() string { return ansi.Strip(f.m.View()) }

func TestMountShowsSpinnerThenModel(t *testing.T) {
	f := newFixture(t, nil)
	require.NotNil(t, f.m.Init())

	st := f.m.machine.State()
	require.True(t, st.Loading)
	require.Equal(t, "engine", st.ModelID)
	require.Contains(t, f.view(), "Loading 3D model...")

	f.settle(t)
	require.Equal(t, viewer.State{
		Loading:  false,
		Category: catalog.Mechanical,
		ModelID:  "engine",
		Rotating: true,
		Zoom:     1.0,
		Tab:      viewer.Overview,
	}, f.m.machine.State())
	require.NotNil(t, f.m.mesh)

	out := f.view()
	require.Contains(t, out, "Combustion Engine")
	require.Contains(t, out, "Learning Objectives")
	require.Contains(t, out, "Learning Analytics")
	require.NotContains(t, out, "Loading 3D model...")
}

func TestStaleCompletionIsDropped(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)

	f.press("]")
	pump, _ := f.m.machine.Pending()
	require.Equal(t, "pump", pump.ModelID)
	f.press("]")
	cylinder, _ := f.m.machine.Pending()
	require.Equal(t, "cylinder", cylinder.ModelID)

	f.send(loadedMsg{ticket: pump})
	require.True(t, f.m.machine.State().Loading)
	require.Nil(t, f.m.mesh)

	f.send(loadedMsg{ticket: cylinder})
	st := f.m.machine.State()
	require.False(t, st.Loading)
	require.Equal(t, "cylinder", st.ModelID)
}

func TestSubjectChangeToasts(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)

	require.NotNil(t, f.press("b"))
	st := f.m.machine.State()
	require.Equal(t, catalog.Biological, st.Category)
	require.Equal(t, "brain", st.ModelID)
	require.True(t, st.Loading)

	require.Len(t, f.toasts.toasts, 1)
	require.Equal(t, "Brain Medical Science", f.toasts.toasts[0].Title)
	require.Equal(t, "Loading brain science AR models and data.", f.toasts.toasts[0].Description)
	require.Equal(t, 2*time.Second, f.toasts.toasts[0].Duration)
	require.Contains(t, f.view(), "Loading brain science AR models and data.")
	require.Contains(t, f.logs.String(), "toast: Brain Medical Science")

	f.press("b")
	require.Len(t, f.toasts.toasts, 1, "re-selecting the active subject should not toast")

	f.press("m")
	require.Len(t, f.toasts.toasts, 2)
	require.Equal(t, "Mechanical Engineering", f.toasts.toasts[1].Title)
	require.Equal(t, "engine", f.m.machine.State().ModelID)
}

func TestDismissRemovesToast(t *testing.T) {
	f := newFixture(t, nil)
	f.press("b")
	active := f.m.center.Active()
	require.Len(t, active, 1)

	f.send(dismissMsg{id: active[0].ID})
	require.Empty(t, f.m.center.Active())
	require.NotContains(t, f.view(), "AR models and data")
}

func TestViewerKeys(t *testing.T) {
	f := newFixture(t, nil)

	f.press("space")
	require.True(t, f.m.machine.State().Rotating, "rotation toggle is ignored while loading")

	f.settle(t)
	f.press("space")
	require.False(t, f.m.machine.State().Rotating)
	require.Contains(t, f.view(), "paused")
	f.press("space")
	require.True(t, f.m.machine.State().Rotating)

	f.press("+", "+", "-", "+")
	require.InDelta(t, 1.2, f.m.machine.State().Zoom, 1e-9)
	require.Contains(t, f.view(), "zoom 1.2x")

	f.press("d")
	require.True(t, f.m.machine.State().ShowDimensions)
	require.Contains(t, f.view(), "Dimensions: 45 × 30 × 35 cm")

	f.press("s")
	require.Equal(t, viewer.Specs, f.m.machine.State().Tab)
	require.Contains(t, f.view(), "Four-stroke")
	f.press("t")
	require.Equal(t, viewer.Details, f.m.machine.State().Tab)
	f.press("o")
	require.Equal(t, viewer.Overview, f.m.machine.State().Tab)
}

func TestZoomStaysInBounds(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)
	for i := 0; i < 20; i++ {
		f.press("+")
	}
	require.Equal(t, viewer.MaxZoom, f.m.machine.State().Zoom)
	for i := 0; i < 30; i++ {
		f.press("-")
	}
	require.Equal(t, viewer.MinZoom, f.m.machine.State().Zoom)
}

func TestFrameSpinsOnlyWhenRotating(t *testing.T) {
	f := newFixture(t, nil)

	f.send(frameMsg(time.Now()))
	require.Zero(t, f.m.cam.Yaw, "loading models do not spin")

	f.settle(t)
	require.NotNil(t, f.send(frameMsg(time.Now())))
	yaw := f.m.cam.Yaw
	require.Greater(t, yaw, 0.0)

	f.press("space")
	f.send(frameMsg(time.Now()))
	require.Equal(t, yaw, f.m.cam.Yaw)
}

func TestModelsPagePicksAcrossCategories(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)

	f.press("2")
	require.Equal(t, pageModels, f.m.page)
	require.Len(t, f.m.matches, len(catalog.All()))
	require.Contains(t, f.view(), "Model Library")

	f.typeText("neuron")
	require.NotEmpty(t, f.m.matches)
	require.Equal(t, "neuron", f.m.matches[0].ID)

	require.NotNil(t, f.press("enter"))
	require.Equal(t, pageDashboard, f.m.page)
	st := f.m.machine.State()
	require.Equal(t, catalog.Biological, st.Category)
	require.Equal(t, "neuron", st.ModelID)
	require.True(t, st.Loading)
	require.Len(t, f.toasts.toasts, 1)

	ticket, _ := f.m.machine.Pending()
	require.Equal(t, viewer.DefaultSelectDelay, ticket.Delay)
	f.settle(t)
	require.Equal(t, "neuron", f.m.machine.State().ModelID)
}

func TestModelsPageTypingIsNotAShortcut(t *testing.T) {
	f := newFixture(t, nil)
	f.press("2")
	f.typeText("q3b")
	require.Equal(t, pageModels, f.m.page)
	require.Equal(t, "q3b", f.m.search.Value())
	require.Equal(t, catalog.Mechanical, f.m.machine.State().Category)

	f.press("esc")
	require.Equal(t, pageDashboard, f.m.page)
}

func TestNotFoundPage(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.View = "labs" })
	require.Equal(t, pageNotFound, f.m.page)
	require.Contains(t, f.logs.String(), `404: unknown page "labs"`)

	out := f.view()
	require.Contains(t, out, "404")
	require.Contains(t, out, "Oops! Page not found")
	require.Contains(t, out, "Return to Dashboard")

	f.press("enter")
	require.Equal(t, pageDashboard, f.m.page)
}

func TestStartPageFromConfig(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.View = "settings" })
	require.Equal(t, pageSettings, f.m.page)
	out := f.view()
	require.Contains(t, out, "Mount delay")
	require.Contains(t, out, "1.5s")
}

func TestPageNavigation(t *testing.T) {
	f := newFixture(t, nil)
	f.press("3")
	require.Equal(t, pageSettings, f.m.page)
	f.press("tab")
	require.Equal(t, pageDashboard, f.m.page)
	f.press("tab")
	require.Equal(t, pageModels, f.m.page)
	f.press("tab")
	require.Equal(t, pageSettings, f.m.page)
	f.press("1")
	require.Equal(t, pageDashboard, f.m.page)

	f.press("2")
	require.Equal(t, pageModels, f.m.page)
	require.True(t, f.m.search.Focused(), "search box should be focused on the Models page")
	f.press("esc")
	require.Equal(t, pageDashboard, f.m.page)
	require.False(t, f.m.search.Focused())
}

func TestYankCopiesSheet(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)

	cmd := f.press("y")
	require.NotNil(t, cmd)
	f.send(cmd())
	require.Len(t, *f.copied, 1)
	require.True(t, strings.HasPrefix((*f.copied)[0], "# Combustion Engine"))
	require.Equal(t, "Copied", f.toasts.toasts[len(f.toasts.toasts)-1].Title)

	f.copyErr = errors.New("no clipboard utility")
	cmd = f.press("y")
	f.send(cmd())
	last := f.toasts.toasts[len(f.toasts.toasts)-1]
	require.Equal(t, "Clipboard unavailable", last.Title)
	require.Equal(t, "no clipboard utility", last.Description)
}

func TestThemeCycle(t *testing.T) {
	f := newFixture(t, nil)
	f.press("T")
	require.Equal(t, "ocean", viz.CurrentTheme.Name)
	require.Equal(t, "ocean", f.m.cfg.Theme)
	f.press("3")
	require.Contains(t, f.view(), "● ocean")
}

func TestConfigChanged(t *testing.T) {
	f := newFixture(t, nil)

	cfg := config.DefaultConfig()
	cfg.Theme = "retro"
	f.send(ConfigChangedMsg{Config: cfg})
	require.Equal(t, "retro", viz.CurrentTheme.Name)
	require.Equal(t, "Config reloaded", f.toasts.toasts[len(f.toasts.toasts)-1].Title)

	f.send(ConfigChangedMsg{Err: errors.New("yaml: line 2: bad indent")})
	require.Equal(t, "retro", viz.CurrentTheme.Name)
	require.Equal(t, "Config reload failed", f.toasts.toasts[len(f.toasts.toasts)-1].Title)
	require.Contains(t, f.logs.String(), "config reload")
}

func TestWindowResize(t *testing.T) {
	f := newFixture(t, nil)
	f.settle(t)
	f.send(tea.WindowSizeMsg{Width: 140, Height: 40})
	require.Equal(t, 140, f.m.width)
	require.NotEmpty(t, f.view())
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in   string
		want page
		ok   bool
	}{
		{"", pageDashboard, true},
		{"Dashboard", pageDashboard, true},
		{"models", pageModels, true},
		{" settings ", pageSettings, true},
		{"labs", pageNotFound, false},
	}
	for _, tt := range tests {
		got, ok := parsePage(tt.in)
		require.Equal(t, tt.want, got, tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
	}
}
