package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"replog/internal/domain"
	"replog/internal/i18n"
	"replog/internal/logging"
	"replog/internal/store"
	"replog/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateAdding
	stateConfirmingReset
	stateEditing
)

// Model is the single-screen session log UI: a list of sessions with
// add/edit forms layered on top. All store operations run synchronously
// on the Bubble Tea update loop.
type Model struct {
	editingID    string           // Session being edited
	height       int
	help         help.Model
	keys         KeyMap           // Keyboard shortcuts
	lang         i18n.Language    // UI language
	list         list.Model       // Session list component
	noteForm     *NoteForm        // Add/edit dialog
	resetConfirm *ResetConfirm    // Reset confirmation dialog
	selected     map[string]bool  // Multi-select, keyed by session id
	state        uiState
	store        *store.SessionStore
	title        string           // Header title (settings override)
	width        int
}

// NewModel creates the UI model over an already-loaded session store.
func NewModel(sessionStore *store.SessionStore, title string, lang i18n.Language) *Model {
	m := &Model{
		help:     help.New(),
		keys:     NewKeyMap(lang),
		lang:     lang,
		selected: make(map[string]bool),
		store:    sessionStore,
		title:    title,
	}
	m.list = newSessionList(sessionStore.Sessions(), m.selected)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
		m.resizeList()
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateAdding:
		return m.updateAdding(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	case stateEditing:
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Add):
		m.noteForm = NewNoteForm(m.lang, i18n.T(m.lang, i18n.KeyAddSession), "")
		m.state = stateAdding
		return m, m.noteForm.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		session, ok := m.currentSession()
		if !ok {
			return m, nil
		}
		m.editingID = session.ID
		m.noteForm = NewNoteForm(m.lang, i18n.T(m.lang, i18n.KeyEditSession), session.Note)
		m.state = stateEditing
		return m, m.noteForm.Init()

	case key.Matches(keyMsg, m.keys.End):
		session, ok := m.currentSession()
		if !ok || !session.InProgress() {
			return m, nil
		}
		m.store.EndSession(context.Background(), session.ID)
		m.refresh()
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		session, ok := m.currentSession()
		if !ok {
			return m, nil
		}
		if m.selected[session.ID] {
			delete(m.selected, session.ID)
		} else {
			m.selected[session.ID] = true
		}
		m.refresh()
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		m.deleteSelection()
		return m, nil

	case key.Matches(keyMsg, m.keys.Undo):
		m.store.Undo(context.Background())
		m.refresh()
		return m, nil

	case key.Matches(keyMsg, m.keys.Reset):
		m.resetConfirm = NewResetConfirm(m.lang)
		m.state = stateConfirmingReset
		return m, m.resetConfirm.Init()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.noteForm.Update(msg)
	if nf, ok := updated.(*NoteForm); ok {
		m.noteForm = nf
	}

	if m.noteForm.Completed {
		if !m.noteForm.Cancelled() {
			m.store.Add(context.Background(), m.noteForm.Note())
		}
		m.noteForm = nil
		m.state = stateList
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.noteForm.Update(msg)
	if nf, ok := updated.(*NoteForm); ok {
		m.noteForm = nf
	}

	if m.noteForm.Completed {
		if !m.noteForm.Cancelled() {
			if session, ok := m.sessionByID(m.editingID); ok {
				session.Note = strings.TrimSpace(m.noteForm.Note())
				m.store.Edit(context.Background(), session, m.editingID)
			}
		}
		m.noteForm = nil
		m.editingID = ""
		m.state = stateList
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.resetConfirm.Update(msg)
	if rc, ok := updated.(*ResetConfirm); ok {
		m.resetConfirm = rc
	}

	if m.resetConfirm.Completed {
		if m.resetConfirm.Confirmed() {
			m.store.Reset(context.Background())
			m.selected = make(map[string]bool)
		}
		m.resetConfirm = nil
		m.state = stateList
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(theme.CountsStyle.Render(m.countsLine()))
	b.WriteString("\n\n")

	switch m.state {
	case stateAdding, stateEditing:
		b.WriteString(m.noteForm.View())
	case stateConfirmingReset:
		b.WriteString(m.resetConfirm.View())
	default:
		if len(m.list.Items()) == 0 {
			b.WriteString(theme.EmptyStyle.Render(i18n.T(m.lang, i18n.KeyNoSessions)))
		} else {
			b.WriteString(m.list.View())
		}
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

// countsLine renders the aggregate counts header, with an undo marker
// while the undo log is non-empty.
func (m *Model) countsLine() string {
	counts := m.store.Counts()
	line := fmt.Sprintf("%d %s · %d %s · %d %s",
		counts.Total, i18n.T(m.lang, i18n.KeyTotal),
		counts.InProgress, i18n.T(m.lang, i18n.KeyInProgress),
		counts.Completed, i18n.T(m.lang, i18n.KeyCompleted),
	)
	if m.store.CanUndo() {
		line += " · ↶"
	}
	return line
}

// deleteSelection deletes the multi-selected sessions as one batch, or
// the session under the cursor when nothing is selected.
func (m *Model) deleteSelection() {
	sessions := m.store.Sessions()

	var indices []int
	for i, s := range sessions {
		if m.selected[s.ID] {
			indices = append(indices, i)
		}
	}

	if len(indices) > 0 {
		if err := m.store.DeleteMany(context.Background(), indices); err != nil {
			// Indices were derived from the current list, so this is a bug
			logging.Logger.Error("Batch delete rejected", "error", err)
		}
		m.selected = make(map[string]bool)
	} else if session, ok := m.currentSession(); ok {
		m.store.DeleteOne(context.Background(), session)
	}

	m.refresh()
}

func (m *Model) currentSession() (domain.Session, bool) {
	item, ok := m.list.SelectedItem().(SessionItem)
	if !ok {
		return domain.Session{}, false
	}
	return item.Session, true
}

func (m *Model) sessionByID(id string) (domain.Session, bool) {
	for _, s := range m.store.Sessions() {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Session{}, false
}

// refresh rebuilds the list from the store, preserving the cursor.
func (m *Model) refresh() {
	idx := m.list.Index()
	m.list = newSessionList(m.store.Sessions(), m.selected)
	m.resizeList()
	if count := len(m.list.Items()); count > 0 {
		if idx >= count {
			idx = count - 1
		}
		m.list.Select(idx)
	}
}

func (m *Model) resizeList() {
	// Leave room for title, counts line, and the help footer
	headerHeight := 5
	footerHeight := 2
	height := m.height - headerHeight - footerHeight
	if height < 0 {
		height = 0
	}
	m.list.SetSize(m.width, height)
}
