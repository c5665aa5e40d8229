package cmd

import (
	"context"
	"fmt"
)

// SessionsResetCmd deletes all sessions
type SessionsResetCmd struct {
	Force bool `help:"Force reset without confirmation" short:"f"`
}

// Run executes the reset command
func (s *SessionsResetCmd) Run(cli *CLI) error {
	counts := cli.Container.Store.Counts()

	if !s.Force {
		fmt.Printf("WARNING: This will delete all %d session(s) and cannot be undone\n", counts.Total)
		fmt.Print("\nContinue? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	cli.Container.Store.Reset(context.Background())
	fmt.Println("All sessions deleted")
	return nil
}
