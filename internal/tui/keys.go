package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Pages     key.Binding
	NextPage  key.Binding
	Theme     key.Binding
	Help      key.Binding
	Subject   key.Binding
	Mech      key.Binding
	Brain     key.Binding
	Prev      key.Binding
	Next      key.Binding
	Rotate    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Dims      key.Binding
	Overview  key.Binding
	Specs     key.Binding
	Details   key.Binding
	Yank      key.Binding
	UpDown    key.Binding
	Enter     key.Binding
	Back      key.Binding
	Dashboard key.Binding
	Models    key.Binding
	Settings  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pages:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "pages")),
		NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Theme:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Subject:   key.NewBinding(key.WithKeys("m", "b"), key.WithHelp("m/b", "subject")),
		Mech:      key.NewBinding(key.WithKeys("m")),
		Brain:     key.NewBinding(key.WithKeys("b")),
		Prev:      key.NewBinding(key.WithKeys("[", "left"), key.WithHelp("[", "prev model")),
		Next:      key.NewBinding(key.WithKeys("]", "right"), key.WithHelp("]", "next model")),
		Rotate:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "rotate")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Dims:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dimensions")),
		Overview:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Specs:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "specs")),
		Details:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "details")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy sheet")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down", "ctrl+p", "ctrl+n"), key.WithHelp("↑/↓", "navigate")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Dashboard: key.NewBinding(key.WithKeys("1")),
		Models:    key.NewBinding(key.WithKeys("2")),
		Settings:  key.NewBinding(key.WithKeys("3")),
	}
}

// pageKeys adapts the key map to help.KeyMap for the active page.
type pageKeys struct {
	keyMap
	page page
}

func (k pageKeys) ShortHelp() []key.Binding {
	switch k.page {
	case pageModels:
		return []key.Binding{k.UpDown, k.Enter, k.Back}
	case pageSettings:
		return []key.Binding{k.Theme, k.Pages, k.Help, k.Quit}
	case pageNotFound:
		return []key.Binding{k.Enter, k.Quit}
	}
	return []key.Binding{k.Subject, k.Prev, k.Next, k.Rotate, k.ZoomIn, k.ZoomOut, k.Dims, k.Help, k.Quit}
}

func (k pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Subject, k.Prev, k.Next, k.Yank},
		{k.Rotate, k.ZoomIn, k.ZoomOut, k.Dims},
		{k.Overview, k.Specs, k.Details},
		{k.Pages, k.NextPage, k.Theme, k.Quit},
	}
}
