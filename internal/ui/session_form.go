package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"replog/internal/i18n"
)

// NoteForm is a Bubble Tea component for entering or editing a session
// note. The same component backs the add and edit dialogs.
type NoteForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	form      *huh.Form
	note      string
}

// NewNoteForm creates a note form pre-filled with the given note.
func NewNoteForm(lang i18n.Language, title, note string) *NoteForm {
	nf := &NoteForm{note: note}

	nf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Description(i18n.T(lang, i18n.KeyNote)).
			Placeholder(i18n.T(lang, i18n.KeyNotePlaceholder)).
			Value(&nf.note),
	))

	return nf
}

func (nf *NoteForm) Init() tea.Cmd {
	return nf.form.Init()
}

func (nf *NoteForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			nf.Completed = true
			nf.cancelled = true
			return nf, nil
		}
	}

	form, cmd := nf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		nf.form = f
	}

	if nf.form.State == huh.StateCompleted {
		nf.Completed = true
	}

	return nf, cmd
}

func (nf *NoteForm) View() string {
	if nf.form != nil {
		return nf.form.View()
	}
	return ""
}

// Cancelled reports whether the form was dismissed without submitting.
func (nf *NoteForm) Cancelled() bool {
	return nf.cancelled
}

// Note returns the entered note.
func (nf *NoteForm) Note() string {
	return nf.note
}

// ResetConfirm is the confirmation dialog shown before a full reset.
type ResetConfirm struct {
	Completed bool
	confirmed bool
	form      *huh.Form
}

// NewResetConfirm creates the reset confirmation dialog.
func NewResetConfirm(lang i18n.Language) *ResetConfirm {
	rc := &ResetConfirm{}

	rc.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(i18n.T(lang, i18n.KeyConfirmReset)).
			Affirmative(i18n.T(lang, i18n.KeyYes)).
			Negative(i18n.T(lang, i18n.KeyNo)).
			Value(&rc.confirmed),
	))

	return rc
}

func (rc *ResetConfirm) Init() tea.Cmd {
	return rc.form.Init()
}

func (rc *ResetConfirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			rc.Completed = true
			rc.confirmed = false
			return rc, nil
		}
	}

	form, cmd := rc.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rc.form = f
	}

	if rc.form.State == huh.StateCompleted {
		rc.Completed = true
	}

	return rc, cmd
}

func (rc *ResetConfirm) View() string {
	if rc.form != nil {
		return rc.form.View()
	}
	return ""
}

// Confirmed reports whether the user approved the reset.
func (rc *ResetConfirm) Confirmed() bool {
	return rc.confirmed
}
