package store

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"replog/internal/domain"
)

// Property: session ids stay unique no matter what sequence of
// mutations runs against the store.
func TestStoreIDsStayUnique(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, _ := propStore(rt)

		ops := rapid.IntRange(1, 40).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			applyRandomOp(rt, s)
			assertUniqueIDs(rt, s.Sessions())
		}
	})
}

// Property: every single mutation followed by undo restores the exact
// previous list.
func TestUndoReversesLastMutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, _ := propStore(rt)
		ctx := context.Background()

		// Seed with a few sessions.
		seed := rapid.IntRange(0, 6).Draw(rt, "seed")
		for i := 0; i < seed; i++ {
			s.Add(ctx, rapid.StringMatching(`[a-z ]{0,20}`).Draw(rt, "note"))
		}

		before := s.Sessions()
		applyUndoableOp(rt, s)
		s.Undo(ctx)
		after := s.Sessions()

		if len(before) != len(after) {
			rt.Fatalf("undo did not restore length: before %d, after %d", len(before), len(after))
		}
		for i := range before {
			if before[i].ID != after[i].ID || before[i].Note != after[i].Note {
				rt.Fatalf("undo did not restore item %d: before %+v, after %+v", i, before[i], after[i])
			}
			if (before[i].EndTime == nil) != (after[i].EndTime == nil) {
				rt.Fatalf("undo did not restore end time of item %d", i)
			}
		}
	})
}

// Property: counts always partition the list.
func TestCountsPartitionTheList(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, _ := propStore(rt)

		ops := rapid.IntRange(1, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			applyRandomOp(rt, s)

			counts := s.Counts()
			sessions := s.Sessions()
			if counts.Total != len(sessions) {
				rt.Fatalf("total %d does not match list length %d", counts.Total, len(sessions))
			}
			if counts.Completed+counts.InProgress != counts.Total {
				rt.Fatalf("counts do not partition: %+v", counts)
			}
		}
	})
}

func propStore(rt *rapid.T) (*SessionStore, *fakeSnapshots) {
	snapshots := &fakeSnapshots{}
	s := New(context.Background(), newFakeClock(), &fakeIDGen{}, snapshots)
	return s, snapshots
}

// applyRandomOp runs one randomly chosen operation against the store.
// Delete targets are always drawn from the current list, so the
// operation never fails.
func applyRandomOp(rt *rapid.T, s *SessionStore) {
	sessions := s.Sessions()

	choices := []string{"add", "undo", "reset"}
	if len(sessions) > 0 {
		choices = append(choices, "end", "edit", "deleteOne", "deleteMany")
	}
	runOp(rt, s, rapid.SampledFrom(choices).Draw(rt, "op"))
}

// applyUndoableOp runs one mutation that pushes an undo record.
func applyUndoableOp(rt *rapid.T, s *SessionStore) {
	choices := []string{"add"}
	if len(s.Sessions()) > 0 {
		choices = append(choices, "end", "edit", "deleteOne", "deleteMany")
	}
	runOp(rt, s, rapid.SampledFrom(choices).Draw(rt, "op"))
}

func runOp(rt *rapid.T, s *SessionStore, op string) {
	ctx := context.Background()
	sessions := s.Sessions()

	switch op {
	case "add":
		s.Add(ctx, rapid.StringMatching(`[a-z ]{0,20}`).Draw(rt, "note"))
	case "end":
		target := rapid.IntRange(0, len(sessions)-1).Draw(rt, "target")
		s.EndSession(ctx, sessions[target].ID)
	case "edit":
		target := rapid.IntRange(0, len(sessions)-1).Draw(rt, "target")
		updated := sessions[target]
		updated.Note = rapid.StringMatching(`[a-z ]{0,20}`).Draw(rt, "newNote")
		s.Edit(ctx, updated, updated.ID)
	case "deleteOne":
		target := rapid.IntRange(0, len(sessions)-1).Draw(rt, "target")
		s.DeleteOne(ctx, sessions[target])
	case "deleteMany":
		count := rapid.IntRange(1, len(sessions)).Draw(rt, "count")
		perm := rapid.Permutation(indexRange(len(sessions))).Draw(rt, "perm")
		if err := s.DeleteMany(ctx, perm[:count]); err != nil {
			rt.Fatalf("DeleteMany with valid indices failed: %v", err)
		}
	case "undo":
		s.Undo(ctx)
	case "reset":
		s.Reset(ctx)
	}
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func assertUniqueIDs(rt *rapid.T, sessions []domain.Session) {
	seen := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		if seen[session.ID] {
			rt.Fatalf("duplicate session id %q", session.ID)
		}
		seen[session.ID] = true
	}
}
