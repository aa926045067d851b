package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	quit      key.Binding
	upload    key.Binding
	download  key.Binding
	selection key.Binding
	toggle    key.Binding
	selectAll key.Binding
	cancel    key.Binding
	delete    key.Binding
	esc       key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	upload:    key.NewBinding(key.WithKeys("u")),
	download:  key.NewBinding(key.WithKeys("d")),
	selection: key.NewBinding(key.WithKeys("v")),
	toggle:    key.NewBinding(key.WithKeys(" ", "enter")),
	selectAll: key.NewBinding(key.WithKeys("a")),
	cancel:    key.NewBinding(key.WithKeys("c")),
	delete:    key.NewBinding(key.WithKeys("x")),
	esc:       key.NewBinding(key.WithKeys("esc")),
}
