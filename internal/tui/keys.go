package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	search    key.Binding
	plans     key.Binding
	upgrade   key.Binding
	downgrade key.Binding
	copyField key.Binding
	dropTag   key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	search:    key.NewBinding(key.WithKeys("/")),
	plans:     key.NewBinding(key.WithKeys("p")),
	upgrade:   key.NewBinding(key.WithKeys("+", "=")),
	downgrade: key.NewBinding(key.WithKeys("-")),
	copyField: key.NewBinding(key.WithKeys("c")),
	dropTag:   key.NewBinding(key.WithKeys("x")),
	version:   key.NewBinding(key.WithKeys("v")),
}
