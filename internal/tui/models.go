package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viz"
)

// filter narrows the Models page to entries fuzzy-matching the search box.
func (m *Model) filter() {
	all := catalog.All()
	query := strings.TrimSpace(m.search.Value())
	m.cursor = 0
	if query == "" {
		m.matches = all
		return
	}

	searchStrings := make([]string, len(all))
	for i, e := range all {
		searchStrings[i] = e.Name + " " + e.ID + " " + e.Category.String()
	}
	matches := fuzzy.Find(query, searchStrings)
	m.matches = make([]catalog.Entry, 0, len(matches))
	for _, match := range matches {
		m.matches = append(m.matches, all[match.Index])
	}
}

func (m Model) modelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.setPage(pageDashboard)
		return m, cmd
	case key.Matches(msg, m.keys.NextPage):
		cmd := m.setPage(pageSettings)
		return m, cmd
	case msg.String() == "up" || msg.String() == "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case msg.String() == "down" || msg.String() == "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if len(m.matches) == 0 {
			return m, nil
		}
		cmd := m.pick(m.matches[m.cursor])
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter()
	return m, cmd
}

// pick switches to e's category if needed, selects e and returns to the
// dashboard.
func (m *Model) pick(e catalog.Entry) tea.Cmd {
	var cmds []tea.Cmd
	if m.machine.State().Category != e.Category {
		cmds = append(cmds, m.setSubject(e.Category))
	}
	t, err := m.machine.Select(e.ID)
	if err != nil {
		m.logger.Printf("pick %s: %v", e.ID, err)
		return tea.Batch(cmds...)
	}
	cmds = append(cmds, m.startLoad(t), m.setPage(pageDashboard))
	return tea.Batch(cmds...)
}

func (m Model) modelsView(w int) string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	if len(m.matches) == 0 {
		b.WriteString(viz.Subtle.Render("No models match."))
	}
	current := m.machine.State().ModelID
	for i, e := range m.matches {
		prefix := "  "
		name := viz.Body.Render(viz.PadCell(e.Name, 24))
		if i == m.cursor {
			prefix = viz.Highlight.Render("> ")
			name = viz.Highlight.Render(viz.PadCell(e.Name, 24))
		}
		marker := " "
		if e.ID == current {
			marker = viz.StatusOK.Render("●")
		}
		line := prefix + marker + " " + name + " " +
			viz.Subtle.Render(viz.PadCell(e.Category.Title(), 24)) + " " +
			viz.Subtle.Render(e.Dimensions.String())
		b.WriteString(line)
		if i < len(m.matches)-1 {
			b.WriteByte('\n')
		}
	}
	return viz.BoxWithTitle("Model Library", b.String(), w)
}
