package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	SwitchPane key.Binding

	Create    key.Binding
	Retrieve  key.Binding
	Update    key.Binding
	Delete    key.Binding
	Archive   key.Binding
	Unarchive key.Binding
	Search    key.Binding
	Clear     key.Binding

	AddRow    key.Binding
	RemoveRow key.Binding
	Toggle    key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		SwitchPane: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "switch form")),

		Create:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "create")),
		Retrieve:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "retrieve")),
		Update:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "update")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Archive:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "archive")),
		Unarchive: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "unarchive")),
		Search:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		AddRow:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "add row")),
		RemoveRow: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove row")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle archived")),

		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Create, k.Retrieve, k.Update, k.Search, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.SwitchPane},
		{k.Create, k.Retrieve, k.Update, k.Delete},
		{k.Archive, k.Unarchive, k.Search, k.Clear},
		{k.AddRow, k.RemoveRow, k.Toggle},
		{k.Help, k.Quit},
	}
}
