package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for prompts.
type keyMap struct {
	submit key.Binding
	yes    key.Binding
	no     key.Binding
	cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n", "N", "enter"), key.WithHelp("n", "no")),
		cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.yes, k.no, k.cancel}
}
