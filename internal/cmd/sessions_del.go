package cmd

import (
	"context"
	"fmt"

	"replog/internal/logging"
)

// SessionsDelCmd deletes sessions by their list position
type SessionsDelCmd struct {
	Force     bool  `help:"Force deletion without confirmation" short:"f"`
	Positions []int `arg:"" help:"Positions from 'sessions list' (1-based)"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions del command", "positions", s.Positions, "force", s.Force)

	indices := make([]int, len(s.Positions))
	for i, pos := range s.Positions {
		indices[i] = pos - 1
	}

	if !s.Force {
		fmt.Printf("WARNING: This will delete %d session(s)\n", len(s.Positions))
		fmt.Print("\nContinue? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.Store.DeleteMany(context.Background(), indices); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	fmt.Printf("Deleted %d session(s), undo with 'replog sessions undo'\n", len(s.Positions))
	return nil
}
