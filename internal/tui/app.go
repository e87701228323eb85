// Package tui is the interactive dashboard: a navbar with Dashboard, Models
// and Settings pages around the model viewer.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/config"
	"github.com/san-kum/eduvision/internal/notify"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	// spinStep is the yaw advanced per frame while auto-rotating.
	spinStep   = 0.06
	toastLimit = 3
)

type page int

const (
	pageDashboard page = iota
	pageModels
	pageSettings
	pageNotFound
)

var navPages = []page{pageDashboard, pageModels, pageSettings}

func (p page) String() string {
	switch p {
	case pageDashboard:
		return "Dashboard"
	case pageModels:
		return "Models"
	case pageSettings:
		return "Settings"
	}
	return "Not Found"
}

func parsePage(s string) (page, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dashboard", "home":
		return pageDashboard, true
	case "models":
		return pageModels, true
	case "settings":
		return pageSettings, true
	}
	return pageNotFound, false
}

type Options struct {
	Config *config.Config
	// Notifier receives every toast in addition to the on-screen queue.
	Notifier notify.Notifier
	Logger   *log.Logger
	// Clipboard replaces the system clipboard writer.
	Clipboard func(string) error
	// WatchPath, when set, reloads the config file on change. WatchBase is
	// the config the file is layered on.
	WatchPath string
	WatchBase *config.Config
}

type (
	loadedMsg    struct{ ticket viewer.Ticket }
	frameMsg     time.Time
	dismissMsg   struct{ id uint64 }
	clipboardMsg struct {
		model string
		err   error
	}
)

// ConfigChangedMsg carries a config reloaded by the file watcher.
type ConfigChangedMsg struct {
	Config *config.Config
	Err    error
}

type Model struct {
	cfg     *config.Config
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	search  textinput.Model

	machine *viewer.Machine
	initial viewer.Ticket
	cam     *viz.Camera
	mesh    *viz.Mesh
	rng     *rand.Rand

	center    *notify.Center
	notifier  notify.Notifier
	seenToast uint64
	logger    *log.Logger
	copy      func(string) error

	page    page
	missing string
	matches []catalog.Entry
	cursor  int

	width, height int
}

func New(opts Options) Model {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cp := *opts.Config
		cfg = &cp
	}
	viz.SetTheme(cfg.Theme)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	center := notify.NewCenter(toastLimit)
	sinks := []notify.Notifier{center, notify.LogNotifier{Logger: logger}}
	if opts.Notifier != nil {
		sinks = append(sinks, opts.Notifier)
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	machine, initial := viewer.New(cfg.CategoryValue(), cfg.ViewerOptions()...)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(viz.Highlight))
	search := textinput.New()
	search.Placeholder = "Search models..."
	search.CharLimit = 32
	search.Width = 30

	m := Model{
		cfg:      cfg,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  sp,
		search:   search,
		machine:  machine,
		initial:  initial,
		cam:      viz.NewCamera(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		center:   center,
		notifier: notify.Multi(sinks...),
		logger:   logger,
		copy:     copyFn,
		width:    defaultWidth,
		height:   defaultHeight,
	}

	p, ok := parsePage(cfg.View)
	if !ok {
		m.missing = cfg.View
		logger.Printf("404: unknown page %q", cfg.View)
	}
	m.setPage(p)
	m.filter()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, loadCmd(m.initial), frameCmd(m.cfg.FrameInterval())}
	if m.page == pageModels {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func loadCmd(t viewer.Ticket) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg { return loadedMsg{ticket: t} })
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		if m.machine.Complete(msg.ticket) {
			m.mesh, _ = viz.Scene(msg.ticket.ModelID, m.rng)
			m.logger.Printf("loaded %s (gen %d)", msg.ticket.ModelID, msg.ticket.Gen)
		}
		return m, nil

	case frameMsg:
		if st := m.machine.State(); st.Ready() && st.Rotating {
			m.cam.Spin(spinStep)
		}
		return m, frameCmd(m.cfg.FrameInterval())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dismissMsg:
		m.center.Dismiss(msg.id)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			cmd := m.toast(notify.Toast{Title: "Clipboard unavailable", Description: msg.err.Error()})
			return m, cmd
		}
		cmd := m.toast(notify.Toast{Title: "Copied", Description: msg.model + " fact sheet copied to clipboard."})
		return m, cmd

	case ConfigChangedMsg:
		cmd := m.applyConfig(msg)
		return m, cmd
	}

	if m.page == pageModels {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) applyConfig(msg ConfigChangedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Printf("config reload: %v", msg.Err)
		return m.toast(notify.Toast{Title: "Config reload failed", Description: msg.Err.Error()})
	}
	viz.SetTheme(msg.Config.Theme)
	cp := *msg.Config
	m.cfg = &cp
	return m.toast(notify.Toast{Title: "Config reloaded", Description: "Theme: " + cp.Theme})
}

// toast sends t through the notifier and schedules dismissal of whatever
// it added to the on-screen queue.
func (m *Model) toast(t notify.Toast) tea.Cmd {
	m.notifier.Notify(t)
	var cmds []tea.Cmd
	for _, l := range m.center.Since(m.seenToast) {
		m.seenToast = l.ID
		id := l.ID
		cmds = append(cmds, tea.Tick(l.Toast.Duration, func(time.Time) tea.Msg { return dismissMsg{id: id} }))
	}
	return tea.Batch(cmds...)
}

func subjectToast(c catalog.Category) notify.Toast {
	return notify.Toast{
		Title:       c.Title(),
		Description: fmt.Sprintf("Loading %s AR models and data.", c.Short()),
		Duration:    notify.DefaultDuration,
	}
}

func (m *Model) setPage(p page) tea.Cmd {
	m.page = p
	if p == pageModels {
		m.search.SetValue("")
		m.filter()
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// startLoad drops the current mesh and schedules completion of t.
func (m *Model) startLoad(t viewer.Ticket) tea.Cmd {
	m.mesh = nil
	return loadCmd(t)
}

// setSubject switches category. Choosing the active subject again does
// nothing.
func (m *Model) setSubject(c catalog.Category) tea.Cmd {
	if m.machine.State().Category == c {
		return nil
	}
	t := m.machine.SetCategory(c)
	return tea.Batch(m.startLoad(t), m.toast(subjectToast(c)))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.page {
	case pageModels:
		return m.modelsKey(msg)
	case pageNotFound:
		switch {
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Back):
			m.missing = ""
			cmd := m.setPage(pageDashboard)
			return m, cmd
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dashboard):
		cmd := m.setPage(pageDashboard)
		return m, cmd
	case key.Matches(msg, m.keys.Models):
		cmd := m.setPage(pageModels)
		return m, cmd
	case key.Matches(msg, m.keys.Settings):
		cmd := m.setPage(pageSettings)
		return m, cmd
	case key.Matches(msg, m.keys.NextPage):
		cmd := m.setPage(navPages[(int(m.page)+1)%len(navPages)])
		return m, cmd
	case key.Matches(msg, m.keys.Theme):
		next := viz.NextTheme(viz.CurrentTheme.Name)
		viz.SetTheme(next.Name)
		m.cfg.Theme = next.Name
		cmd := m.toast(notify.Toast{Title: "Theme", Description: next.Name})
		return m, cmd
	}

	if m.page == pageDashboard {
		return m.dashboardKey(msg)
	}
	return m, nil
}

func (m Model) dashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mech):
		cmd := m.setSubject(catalog.Mechanical)
		return m, cmd
	case key.Matches(msg, m.keys.Brain):
		cmd := m.setSubject(catalog.Biological)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.startLoad(m.machine.Step(-1))
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		cmd := m.startLoad(m.machine.Step(1))
		return m, cmd
	case key.Matches(msg, m.keys.Rotate):
		m.machine.ToggleRotation()
	case key.Matches(msg, m.keys.ZoomIn):
		m.machine.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.machine.ZoomOut()
	case key.Matches(msg, m.keys.Dims):
		m.machine.ToggleDimensions()
	case key.Matches(msg, m.keys.Overview):
		_ = m.machine.SelectTab(viewer.Overview)
	case key.Matches(msg, m.keys.Specs):
		_ = m.machine.SelectTab(viewer.Specs)
	case key.Matches(msg, m.keys.Details):
		_ = m.machine.SelectTab(viewer.Details)
	case key.Matches(msg, m.keys.Yank):
		e := m.machine.Entry()
		sheet, copyFn := catalog.Sheet(e), m.copy
		return m, func() tea.Msg {
			return clipboardMsg{model: e.Name, err: copyFn(sheet)}
		}
	}
	return m, nil
}

// Run starts the dashboard in the alternate screen and blocks until it
// exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.WatchPath != "" {
		base := opts.WatchBase
		if base == nil {
			base = config.DefaultConfig()
		}
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(wctx, opts.WatchPath, base, func(cfg *config.Config, err error) {
				p.Send(ConfigChangedMsg{Config: cfg, Err: err})
			})
			if err != nil && wctx.Err() == nil && opts.Logger != nil {
				opts.Logger.Printf("config watch: %v", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
