package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add   SessionsAddCmd   `cmd:"add" help:"Add a new session"`
	Del   SessionsDelCmd   `cmd:"del" help:"Delete sessions by position"`
	End   SessionsEndCmd   `cmd:"end" help:"End an in-progress session"`
	List  SessionsListCmd  `cmd:"list" help:"List all sessions" default:"1"`
	Reset SessionsResetCmd `cmd:"reset" help:"Delete all sessions"`
	Undo  SessionsUndoCmd  `cmd:"undo" help:"Undo the most recent change"`
}
