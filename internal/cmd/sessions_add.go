package cmd

import (
	"context"
	"fmt"
	"strings"
)

// SessionsAddCmd adds a new session
type SessionsAddCmd struct {
	Note []string `arg:"" optional:"" help:"Free-text note for the session"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	session := cli.Container.Store.Add(context.Background(), strings.Join(s.Note, " "))

	fmt.Printf("Session started at %s\n", session.StartTime.Local().Format("15:04:05"))
	return nil
}
