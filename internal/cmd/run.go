package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"replog/internal/config"
	"replog/internal/i18n"
	"replog/internal/logging"
	"replog/internal/theme"
	"replog/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Appearance string `help:"Color scheme (auto detects the terminal background)" enum:"auto,dark,light" default:"auto"`
	Lang       string `help:"UI language" enum:",en,pt" default:""`
	Title      string `help:"Custom title shown above the session list" default:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings with proper precedence
	// Only apply if flag is at default value and env var is not set

	if cli.settings != nil {
		if r.Appearance == config.DefaultAppearance {
			if _, hasEnv := os.LookupEnv("REPLOG_APPEARANCE"); !hasEnv {
				if cli.settings.Appearance != "" {
					r.Appearance = cli.settings.Appearance
				}
			}
		}

		if r.Lang == "" {
			if _, hasEnv := os.LookupEnv("REPLOG_LANG"); !hasEnv {
				if cli.settings.Language != "" {
					r.Lang = cli.settings.Language
				}
			}
		}

		if r.Title == "" {
			if cli.settings.Title != "" {
				r.Title = cli.settings.Title
			}
		}
	}

	if r.Lang == "" {
		r.Lang = os.Getenv("REPLOG_LANG")
	}
	if r.Appearance == config.DefaultAppearance {
		if env := os.Getenv("REPLOG_APPEARANCE"); env != "" {
			r.Appearance = env
		}
	}
	if r.Title == "" {
		r.Title = config.DefaultTitle
	}

	logging.Logger.Info("Starting replog TUI",
		"appearance", r.Appearance,
		"lang", r.Lang,
		"title", r.Title)

	theme.Apply(r.Appearance)

	model := ui.NewModel(cli.Container.Store, r.Title, i18n.ParseLanguage(r.Lang))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
