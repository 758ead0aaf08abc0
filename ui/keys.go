package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Pick   key.Binding
	Clear  key.Binding
	Retry  key.Binding
	Reload key.Binding
	Quit   key.Binding
	Abort  key.Binding

	// picker
	PickUp     key.Binding
	PickDown   key.Binding
	PickAccept key.Binding
	PickCancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left side")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right side")),
		Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose port")),
		Clear:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Reload: key.NewBinding(key.WithKeys("R", "ctrl+r"), key.WithHelp("R", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Abort:  key.NewBinding(key.WithKeys("ctrl+c")),

		PickUp:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
		PickDown:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PickAccept: key.NewBinding(key.WithKeys("enter")),
		PickCancel: key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pick, k.Clear, k.Retry, k.Reload, k.Quit}
}
