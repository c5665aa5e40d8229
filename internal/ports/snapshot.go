package ports

import (
	"context"

	"replog/internal/domain"
)

// SnapshotStore persists full session-list snapshots.
//
// Both methods are best-effort by construction: Save swallows
// serialization and storage failures (the in-memory list stays the source
// of truth for the running process), and Load degrades to an empty list
// when every slot is absent or undecodable. Failures are logged, never
// surfaced.
type SnapshotStore interface {
	Save(ctx context.Context, sessions []domain.Session)
	Load(ctx context.Context) []domain.Session
}
