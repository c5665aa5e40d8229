package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	CountsStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// State icon styles
var (
	CompletedIconStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted)

	InProgressIconStyle = lipgloss.NewStyle().
				Foreground(ColorInProgress)

	SelectedIconStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true)
)
