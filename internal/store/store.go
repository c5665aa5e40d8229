package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"replog/internal/domain"
	"replog/internal/logging"
	"replog/internal/ports"
)

// SessionStore owns the ordered session list and the undo log. All
// operations run synchronously on one logical thread (the UI event loop),
// so no locking is needed.
//
// Every mutation pushes an inverse record onto the undo log and then
// persists the full list snapshot through the injected SnapshotStore.
// The undo log itself is in-memory only and never persisted.
type SessionStore struct {
	clock     ports.Clock
	idGen     ports.IDGenerator
	sessions  []domain.Session
	snapshots ports.SnapshotStore
	undoLog   []domain.UndoRecord
}

// New creates a SessionStore and installs the latest persisted snapshot
// as the initial list.
func New(ctx context.Context, clock ports.Clock, idGen ports.IDGenerator, snapshots ports.SnapshotStore) *SessionStore {
	s := &SessionStore{
		clock:     clock,
		idGen:     idGen,
		snapshots: snapshots,
	}
	s.sessions = snapshots.Load(ctx)
	logging.Logger.Debug("Session store initialized", "sessions", len(s.sessions))
	return s
}

// Sessions returns a copy of the current session list, most recent first.
func (s *SessionStore) Sessions() []domain.Session {
	out := make([]domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Counts returns the aggregate counts for the current list.
func (s *SessionStore) Counts() domain.Counts {
	return domain.CountSessions(s.sessions)
}

// CanUndo reports whether the undo log is non-empty. The UI uses this to
// enable or disable the undo control.
func (s *SessionStore) CanUndo() bool {
	return len(s.undoLog) > 0
}

// Add creates a new in-progress session with the given note (leading and
// trailing whitespace trimmed) and inserts it at the front of the list.
// It always succeeds and returns the new session.
func (s *SessionStore) Add(ctx context.Context, note string) domain.Session {
	session := domain.Session{
		ID:        s.idGen.NewID(),
		Note:      strings.TrimSpace(note),
		StartTime: s.clock.Now(),
	}

	s.sessions = append([]domain.Session{session}, s.sessions...)
	s.push(domain.UndoAdd{Session: session})
	s.persist(ctx)

	logging.Logger.Debug("Session added", "id", session.ID)
	return session
}

// EndSession sets the end time of the session with the given id to now.
// Unknown ids are silently ignored.
func (s *SessionStore) EndSession(ctx context.Context, id string) {
	idx := s.indexByID(id)
	if idx < 0 {
		logging.Logger.Debug("EndSession: id not found", "id", id)
		return
	}

	before := s.sessions[idx]
	now := s.clock.Now()
	updated := before
	updated.EndTime = &now

	s.push(domain.UndoEdit{Before: before, Index: idx})
	s.sessions[idx] = updated
	s.persist(ctx)

	logging.Logger.Debug("Session ended", "id", id)
}

// Edit replaces the session identified by originalID with updated.
// Unknown ids are silently ignored. The store does not enforce that
// updated carries the same id; callers always set updated.ID = originalID.
func (s *SessionStore) Edit(ctx context.Context, updated domain.Session, originalID string) {
	idx := s.indexByID(originalID)
	if idx < 0 {
		logging.Logger.Debug("Edit: id not found", "id", originalID)
		return
	}

	s.push(domain.UndoEdit{Before: s.sessions[idx], Index: idx})
	s.sessions[idx] = updated
	s.persist(ctx)
}

// DeleteMany removes the sessions at the given indices in one batch. All
// indices refer to the list's state before the removal. A single undo
// record covers the whole batch. Out-of-range or duplicate indices are a
// caller bug and fail fast with ErrIndexOutOfRange.
func (s *SessionStore) DeleteMany(ctx context.Context, indices []int) error {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.sessions) || seen[idx] {
			return fmt.Errorf("%w: %d (list length %d)", domain.ErrIndexOutOfRange, idx, len(s.sessions))
		}
		seen[idx] = true
	}
	if len(indices) == 0 {
		return nil
	}

	// Capture items in ascending index order so undo can reinsert them
	// without earlier reinsertions shifting later targets.
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	items := make([]domain.DeletedItem, len(sorted))
	for i, idx := range sorted {
		items[i] = domain.DeletedItem{Index: idx, Session: s.sessions[idx]}
	}
	s.push(domain.UndoDelete{Items: items})

	remaining := make([]domain.Session, 0, len(s.sessions)-len(sorted))
	for i, session := range s.sessions {
		if !seen[i] {
			remaining = append(remaining, session)
		}
	}
	s.sessions = remaining
	s.persist(ctx)

	logging.Logger.Debug("Sessions deleted", "count", len(items))
	return nil
}

// DeleteOne removes the given session, located by id. Sessions that no
// longer exist are silently ignored.
func (s *SessionStore) DeleteOne(ctx context.Context, session domain.Session) {
	idx := s.indexByID(session.ID)
	if idx < 0 {
		logging.Logger.Debug("DeleteOne: id not found", "id", session.ID)
		return
	}

	s.push(domain.UndoDelete{Items: []domain.DeletedItem{{Index: idx, Session: s.sessions[idx]}}})
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	s.persist(ctx)
}

// Reset clears the session list and the undo log unconditionally. The
// reset itself is not undoable.
func (s *SessionStore) Reset(ctx context.Context) {
	s.sessions = nil
	s.undoLog = nil
	s.persist(ctx)

	logging.Logger.Debug("Session store reset")
}

// Undo reverses the most recent mutation. With an empty undo log it is a
// no-op; repeated calls drain the log one record at a time.
func (s *SessionStore) Undo(ctx context.Context) {
	if len(s.undoLog) == 0 {
		return
	}

	record := s.undoLog[len(s.undoLog)-1]
	s.undoLog = s.undoLog[:len(s.undoLog)-1]

	switch rec := record.(type) {
	case domain.UndoAdd:
		if idx := s.indexByID(rec.Session.ID); idx >= 0 {
			s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
		}
	case domain.UndoDelete:
		// Items were recorded in ascending index order. The clamp
		// tolerates the list having changed shape since the delete.
		for _, item := range rec.Items {
			s.insertAt(min(item.Index, len(s.sessions)), item.Session)
		}
	case domain.UndoEdit:
		if idx := s.indexByID(rec.Before.ID); idx >= 0 {
			s.sessions[idx] = rec.Before
		} else {
			s.insertAt(min(rec.Index, len(s.sessions)), rec.Before)
		}
	}

	s.persist(ctx)
	logging.Logger.Debug("Undo applied", "remaining", len(s.undoLog))
}

func (s *SessionStore) push(record domain.UndoRecord) {
	s.undoLog = append(s.undoLog, record)
}

func (s *SessionStore) persist(ctx context.Context) {
	s.snapshots.Save(ctx, s.sessions)
}

func (s *SessionStore) indexByID(id string) int {
	for i, session := range s.sessions {
		if session.ID == id {
			return i
		}
	}
	return -1
}

func (s *SessionStore) insertAt(idx int, session domain.Session) {
	s.sessions = append(s.sessions, domain.Session{})
	copy(s.sessions[idx+1:], s.sessions[idx:])
	s.sessions[idx] = session
}
