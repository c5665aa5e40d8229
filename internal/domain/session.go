package domain

import (
	"time"
)

// Session represents one logged activity interval (domain entity).
// EndTime is nil while the session is still in progress.
type Session struct {
	EndTime   *time.Time
	ID        string
	Note      string
	StartTime time.Time
}

// InProgress reports whether the session has no end time yet.
func (s Session) InProgress() bool {
	return s.EndTime == nil
}

// Duration returns the elapsed time between start and end.
// It returns 0 and false while the session is in progress.
func (s Session) Duration() (time.Duration, bool) {
	if s.EndTime == nil {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}

// Counts holds the aggregate numbers shown in the UI header.
type Counts struct {
	Completed  int
	InProgress int
	Total      int
}

// CountSessions computes aggregate counts over a session list.
func CountSessions(sessions []Session) Counts {
	c := Counts{Total: len(sessions)}
	for _, s := range sessions {
		if s.InProgress() {
			c.InProgress++
		} else {
			c.Completed++
		}
	}
	return c
}
