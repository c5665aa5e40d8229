package cmd

import (
	"context"
	"fmt"
)

// SessionsEndCmd ends an in-progress session
type SessionsEndCmd struct {
	Position int `arg:"" optional:"" help:"Position from 'sessions list' (defaults to the newest in-progress session)"`
}

// Run executes the end command
func (s *SessionsEndCmd) Run(cli *CLI) error {
	sessions := cli.Container.Store.Sessions()

	if s.Position > 0 {
		if s.Position > len(sessions) {
			return fmt.Errorf("no session at position %d", s.Position)
		}
		session := sessions[s.Position-1]
		if !session.InProgress() {
			return fmt.Errorf("session at position %d already ended", s.Position)
		}
		cli.Container.Store.EndSession(context.Background(), session.ID)
		fmt.Printf("Session %d ended\n", s.Position)
		return nil
	}

	for i, session := range sessions {
		if session.InProgress() {
			cli.Container.Store.EndSession(context.Background(), session.ID)
			fmt.Printf("Session %d ended\n", i+1)
			return nil
		}
	}

	return fmt.Errorf("no session in progress")
}
