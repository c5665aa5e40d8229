package cmd

import (
	"fmt"
)

// SessionsListCmd lists all sessions
type SessionsListCmd struct {
	IDs bool `help:"Show session IDs" short:"i"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions := cli.Container.Store.Sessions()

	if len(sessions) == 0 {
		fmt.Println("No sessions logged")
		return nil
	}

	for i, session := range sessions {
		state := "●"
		end := "-"
		if !session.InProgress() {
			state = "○"
			end = session.EndTime.Local().Format("2006-01-02 15:04")
		}

		note := session.Note
		if note == "" {
			note = "(no note)"
		}

		fmt.Printf("%3d. %s %s\n", i+1, state, note)
		fmt.Printf("      %s – %s\n", session.StartTime.Local().Format("2006-01-02 15:04"), end)
		if s.IDs {
			fmt.Printf("      id: %s\n", session.ID)
		}
	}

	counts := cli.Container.Store.Counts()
	fmt.Printf("\n%d total, %d in progress, %d completed\n",
		counts.Total, counts.InProgress, counts.Completed)
	return nil
}
