package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"replog/internal/i18n"
)

// KeyMap defines the keyboard shortcuts for the session list screen.
type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Edit   key.Binding
	End    key.Binding
	Quit   key.Binding
	Reset  key.Binding
	Select key.Binding
	Undo   key.Binding
}

// NewKeyMap creates the default key map with help text in the given
// language.
func NewKeyMap(lang i18n.Language) KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", i18n.T(lang, i18n.KeyHelpAdd)),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", i18n.T(lang, i18n.KeyHelpDelete)),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", i18n.T(lang, i18n.KeyHelpEdit)),
		),
		End: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T(lang, i18n.KeyHelpEnd)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T(lang, i18n.KeyHelpQuit)),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", i18n.T(lang, i18n.KeyHelpReset)),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", i18n.T(lang, i18n.KeyHelpSelect)),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", i18n.T(lang, i18n.KeyHelpUndo)),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.End, k.Edit, k.Delete, k.Select, k.Undo, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.End, k.Edit, k.Delete},
		{k.Select, k.Undo, k.Reset, k.Quit},
	}
}
