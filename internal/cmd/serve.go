package cmd

import (
	"fmt"

	"replog/internal/config"
	"replog/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"2222"`
}

// Run starts the SSH server
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	srv, err := server.NewServer(s.Host, s.Port, config.GetDBPath(settings), settings)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	return srv.Start()
}
