package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replog/internal/domain"
)

// fakeClock returns a fixed base time advanced by one minute per call.
type fakeClock struct {
	base  time.Time
	calls int
}

func newFakeClock() *fakeClock {
	return &fakeClock{base: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.calls++
	return c.base.Add(time.Duration(c.calls) * time.Minute)
}

type fakeIDGen struct {
	n int
}

func (g *fakeIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fakeSnapshots records every saved snapshot and serves a fixed initial
// list on load.
type fakeSnapshots struct {
	initial []domain.Session
	saves   [][]domain.Session
}

func (f *fakeSnapshots) Save(_ context.Context, sessions []domain.Session) {
	snapshot := make([]domain.Session, len(sessions))
	copy(snapshot, sessions)
	f.saves = append(f.saves, snapshot)
}

func (f *fakeSnapshots) Load(_ context.Context) []domain.Session {
	return f.initial
}

func newTestStore(t *testing.T) (*SessionStore, *fakeSnapshots) {
	t.Helper()
	snapshots := &fakeSnapshots{}
	s := New(context.Background(), newFakeClock(), &fakeIDGen{}, snapshots)
	return s, snapshots
}

func TestNew_LoadsInitialSnapshot(t *testing.T) {
	snapshots := &fakeSnapshots{initial: []domain.Session{
		{ID: "a", Note: "first", StartTime: time.Now()},
		{ID: "b", Note: "second", StartTime: time.Now()},
	}}

	s := New(context.Background(), newFakeClock(), &fakeIDGen{}, snapshots)

	require.Len(t, s.Sessions(), 2)
	assert.Equal(t, "a", s.Sessions()[0].ID)
	assert.False(t, s.CanUndo())
}

func TestAdd_InsertsAtFrontWithUniqueIDs(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	first := s.Add(ctx, "write report")
	second := s.Add(ctx, "review PR")

	sessions := s.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID, "newest session comes first")
	assert.Equal(t, first.ID, sessions[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Nil(t, sessions[0].EndTime)
	assert.True(t, second.StartTime.After(first.StartTime))
	assert.Len(t, snapshots.saves, 2, "every add persists a snapshot")
}

func TestAdd_TrimsNote(t *testing.T) {
	s, _ := newTestStore(t)

	session := s.Add(context.Background(), "  padded note \n")

	assert.Equal(t, "padded note", session.Note)
}

func TestAdd_ThenUndoRemovesIt(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "keep")
	s.Add(ctx, "discard")
	require.True(t, s.CanUndo())

	s.Undo(ctx)

	sessions := s.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "keep", sessions[0].Note)
}

func TestEndSession_SetsEndTime(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	session := s.Add(ctx, "morning work")
	require.True(t, session.InProgress())

	s.EndSession(ctx, session.ID)

	ended := s.Sessions()[0]
	require.NotNil(t, ended.EndTime)
	assert.True(t, ended.EndTime.After(ended.StartTime))

	counts := s.Counts()
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 0, counts.InProgress)
}

func TestEndSession_UnknownIDIsNoop(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "only one")
	savesBefore := len(snapshots.saves)

	s.EndSession(ctx, "missing")

	assert.Nil(t, s.Sessions()[0].EndTime)
	assert.Len(t, snapshots.saves, savesBefore, "no persist on a no-op")
}

func TestEndSession_UndoRestoresInProgress(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	session := s.Add(ctx, "work")
	s.EndSession(ctx, session.ID)
	require.NotNil(t, s.Sessions()[0].EndTime)

	s.Undo(ctx)

	assert.Nil(t, s.Sessions()[0].EndTime)
	assert.Equal(t, session.ID, s.Sessions()[0].ID)
}

func TestEdit_ReplacesSessionAndUndoRestores(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	session := s.Add(ctx, "orignal")

	updated := session
	updated.Note = "original"
	s.Edit(ctx, updated, session.ID)
	assert.Equal(t, "original", s.Sessions()[0].Note)

	s.Undo(ctx)
	assert.Equal(t, "orignal", s.Sessions()[0].Note)
}

func TestEdit_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "unchanged")
	s.Edit(ctx, domain.Session{ID: "ghost", Note: "x"}, "ghost")

	assert.Equal(t, "unchanged", s.Sessions()[0].Note)
}

func TestDeleteMany_RemovesBatchAndUndoRestoresOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// List order after adds: d3, c2, b1, a0
	s.Add(ctx, "a0")
	s.Add(ctx, "b1")
	s.Add(ctx, "c2")
	s.Add(ctx, "d3")

	require.NoError(t, s.DeleteMany(ctx, []int{3, 1}))

	notes := sessionNotes(s)
	assert.Equal(t, []string{"d3", "b1"}, notes)

	s.Undo(ctx)

	assert.Equal(t, []string{"d3", "c2", "b1", "a0"}, sessionNotes(s))
}

func TestDeleteMany_RejectsOutOfRangeIndices(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "one")
	savesBefore := len(snapshots.saves)

	err := s.DeleteMany(ctx, []int{0, 1})
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	err = s.DeleteMany(ctx, []int{-1})
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	err = s.DeleteMany(ctx, []int{0, 0})
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange, "duplicates are rejected")

	assert.Len(t, s.Sessions(), 1, "failed delete leaves the list intact")
	assert.Len(t, snapshots.saves, savesBefore)
}

func TestDeleteMany_EmptyBatchIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "one")
	undoBefore := s.CanUndo()

	require.NoError(t, s.DeleteMany(ctx, nil))

	assert.Len(t, s.Sessions(), 1)
	assert.Equal(t, undoBefore, s.CanUndo())
}

func TestDeleteOne_RemovesByIDAndUndoRestoresPosition(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "bottom")
	middle := s.Add(ctx, "middle")
	s.Add(ctx, "top")

	s.DeleteOne(ctx, middle)
	assert.Equal(t, []string{"top", "bottom"}, sessionNotes(s))

	s.Undo(ctx)
	assert.Equal(t, []string{"top", "middle", "bottom"}, sessionNotes(s))
}

func TestDeleteOne_MissingSessionIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "stays")
	s.DeleteOne(ctx, domain.Session{ID: "gone"})

	assert.Len(t, s.Sessions(), 1)
}

func TestReset_ClearsSessionsAndUndoLog(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "one")
	s.Add(ctx, "two")
	require.True(t, s.CanUndo())

	s.Reset(ctx)

	assert.Empty(t, s.Sessions())
	assert.False(t, s.CanUndo(), "reset is not undoable")

	s.Undo(ctx)
	assert.Empty(t, s.Sessions(), "undo after reset stays empty")

	last := snapshots.saves[len(snapshots.saves)-1]
	assert.Empty(t, last, "empty list is persisted")
}

func TestUndo_EmptyLogIsNoop(t *testing.T) {
	s, snapshots := newTestStore(t)

	s.Undo(context.Background())

	assert.Empty(t, s.Sessions())
	assert.Empty(t, snapshots.saves)
}

func TestUndo_EditAfterDeleteReinsertsAtClampedIndex(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	session := s.Add(ctx, "before edit")

	updated := session
	updated.Note = "after edit"
	s.Edit(ctx, updated, session.ID)

	// Remove the session entirely, then undo twice: first the delete
	// restores the edited session, then the edit undo restores the note.
	s.DeleteOne(ctx, updated)
	require.Empty(t, s.Sessions())

	s.Undo(ctx)
	require.Len(t, s.Sessions(), 1)
	assert.Equal(t, "after edit", s.Sessions()[0].Note)

	s.Undo(ctx)
	require.Len(t, s.Sessions(), 1)
	assert.Equal(t, "before edit", s.Sessions()[0].Note)
}

func TestUndo_DrainsLogInReverseOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "first")
	s.Add(ctx, "second")
	s.Add(ctx, "third")

	s.Undo(ctx)
	assert.Equal(t, []string{"second", "first"}, sessionNotes(s))

	s.Undo(ctx)
	assert.Equal(t, []string{"first"}, sessionNotes(s))

	s.Undo(ctx)
	assert.Empty(t, s.Sessions())
	assert.False(t, s.CanUndo())
}

func TestCounts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "one")
	two := s.Add(ctx, "two")
	s.Add(ctx, "three")
	s.EndSession(ctx, two.ID)

	counts := s.Counts()
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.InProgress)
	assert.Equal(t, 1, counts.Completed)
}

func sessionNotes(s *SessionStore) []string {
	sessions := s.Sessions()
	notes := make([]string, len(sessions))
	for i, session := range sessions {
		notes[i] = session.Note
	}
	return notes
}
