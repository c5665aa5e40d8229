package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"replog/internal/adapters/clock"
	"replog/internal/adapters/idgen"
	"replog/internal/adapters/storage"
	syncclient "replog/internal/adapters/sync"
	"replog/internal/config"
	"replog/internal/i18n"
	"replog/internal/logging"
	"replog/internal/ports"
	"replog/internal/store"
	"replog/internal/ui"
)

// sessionModel wraps ui.Model to release per-connection resources when
// the program quits.
type sessionModel struct {
	*ui.Model
	local      *storage.SQLiteStore
	sessionID  string
	startTime  time.Time
	syncClient *syncclient.Client
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.local.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}
		if s.syncClient != nil {
			if err := s.syncClient.Close(); err != nil {
				logging.Logger.Warn("Failed to close sync client for SSH session",
					"error", err,
					"session_id", s.sessionID)
			}
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Open shared database
	local, err := storage.NewSQLiteStore(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	var synced ports.KeyValueStore
	var syncClient *syncclient.Client
	if s.settings.SyncURL != "" {
		syncClient = syncclient.NewClient(s.settings.SyncURL)
		synced = syncClient
	}

	gateway := storage.NewGateway(local, synced)

	sessionStore := store.New(context.Background(), clock.NewSystem(), idgen.NewUUID(), gateway)

	lang := i18n.ParseLanguage(s.settings.Language)

	title := s.settings.Title
	if title == "" {
		title = config.DefaultTitle
	}

	model := ui.NewModel(sessionStore, title, lang)

	wrappedModel := &sessionModel{
		Model:      model,
		local:      local,
		sessionID:  sessionID,
		startTime:  time.Now(),
		syncClient: syncClient,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
