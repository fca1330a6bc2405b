package update

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	Active    key.Binding
	Completed key.Binding
	Add       key.Binding
	Edit      key.Binding
	Complete  key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Active:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "active")),
		Completed: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		Add:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Complete:  key.NewBinding(key.WithKeys("c", "x"), key.WithHelp("c", "complete")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll detail up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll detail down")),
		Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.Edit, k.Complete, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.Active, k.Completed},
		{k.Add, k.Edit, k.Complete, k.Delete},
		{k.PageUp, k.PageDown},
		{k.Refresh, k.Palette, k.Help, k.Quit},
	}
}
