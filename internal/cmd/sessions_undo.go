package cmd

import (
	"context"
	"fmt"
)

// SessionsUndoCmd undoes the most recent change
type SessionsUndoCmd struct{}

// Run executes the undo command
func (s *SessionsUndoCmd) Run(cli *CLI) error {
	if !cli.Container.Store.CanUndo() {
		fmt.Println("Nothing to undo")
		return nil
	}

	cli.Container.Store.Undo(context.Background())
	fmt.Println("Undone")
	return nil
}
