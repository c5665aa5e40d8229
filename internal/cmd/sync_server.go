package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"replog/internal/config"
	"replog/internal/syncserver"
)

// SyncServerCmd runs the key-value sync server
type SyncServerCmd struct {
	Addr      string `help:"Address to listen on" default:"${default_sync_addr}"`
	StatePath string `help:"Path of the JSON state file (defaults to ~/.replog/sync-state.json)"`
}

// Run starts the sync server and blocks until interrupted
func (s *SyncServerCmd) Run(cli *CLI) error {
	statePath := s.StatePath
	if statePath == "" {
		statePath = config.GetSyncStatePath()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Sync server listening on %s\n", s.Addr)

	srv := syncserver.NewServer(s.Addr, statePath)
	return srv.Run(ctx)
}
