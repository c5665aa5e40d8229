package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"replog/internal/domain"
	"replog/internal/theme"
)

// SessionItem implements list.Item for one logged session.
type SessionItem struct {
	Selected bool
	Session  domain.Session
}

// FilterValue implements list.Item
func (i SessionItem) FilterValue() string {
	return i.Session.Note
}

// sessionDelegate renders session items: state icon + note on the first
// line, the time range on the second.
type sessionDelegate struct{}

// Height implements list.ItemDelegate
func (d sessionDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d sessionDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d sessionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d sessionDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(SessionItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	var stateIcon string
	if item.Session.InProgress() {
		stateIcon = theme.InProgressIconStyle.Render(theme.SymbolInProgress)
	} else {
		stateIcon = theme.CompletedIconStyle.Render(theme.SymbolCompleted)
	}

	note := item.Session.Note
	if note == "" {
		note = "—"
	}

	line1 := fmt.Sprintf("%s %02d. %s %s", cursor, index+1, stateIcon, theme.NoteStyle.Render(note))
	if item.Selected {
		line1 += " " + theme.SelectedIconStyle.Render(theme.SymbolSelected)
	}

	line2 := "        " + theme.TimeStyle.Render(formatTimeRange(item.Session))

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// formatTimeRange formats the session's start/end for the list's second
// line, e.g. "Jan 2 15:04 – 16:10 (1h6m)" or "Jan 2 15:04 –" while in
// progress.
func formatTimeRange(s domain.Session) string {
	start := s.StartTime.Local().Format("Jan 2 15:04")
	if s.EndTime == nil {
		return start + " –"
	}

	end := s.EndTime.Local().Format("15:04")
	if s.EndTime.Local().Format("2006-01-02") != s.StartTime.Local().Format("2006-01-02") {
		end = s.EndTime.Local().Format("Jan 2 15:04")
	}

	if dur, ok := s.Duration(); ok && dur >= 0 {
		return fmt.Sprintf("%s – %s (%s)", start, end, formatDuration(dur))
	}
	return fmt.Sprintf("%s – %s", start, end)
}

// formatDuration renders a duration as 2h05m / 12m / 45s.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// newSessionList builds the list component over the current sessions.
func newSessionList(sessions []domain.Session, selected map[string]bool) list.Model {
	items := make([]list.Item, len(sessions))
	for i, s := range sessions {
		items[i] = SessionItem{Session: s, Selected: selected[s.ID]}
	}

	l := list.New(items, sessionDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}
