package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the view reacts to.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Dec    key.Binding
	Inc    key.Binding
	BigDec key.Binding
	BigInc key.Binding
	Min    key.Binding
	Max    key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev")),
		Next:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
		Dec:    key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "−step")),
		Inc:    key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→/l", "+step")),
		BigDec: key.NewBinding(key.WithKeys("pgdown", "["), key.WithHelp("pgdn/[", "−big")),
		BigInc: key.NewBinding(key.WithKeys("pgup", "]"), key.WithHelp("pgup/]", "+big")),
		Min:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "min")),
		Max:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "max")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// help returns the bindings shown in the footer, in display order.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Dec, k.Inc, k.BigDec, k.BigInc, k.Min, k.Max, k.Reset, k.Quit}
}
