package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"replog/internal/domain"
	"replog/internal/logging"
	"replog/internal/ports"
)

// snapshotKey is the fixed slot name both stores use for the session list.
const snapshotKey = "sessions"

// sessionRecord is the persisted form of a session. The layout predates
// the end-time feature: a missing endDate must decode as in progress,
// never as an error.
type sessionRecord struct {
	ID      string     `json:"id"`
	Date    time.Time  `json:"date"`
	Note    string     `json:"note"`
	EndDate *time.Time `json:"endDate,omitempty"`
}

// Gateway is the persistence gateway: it dual-writes full session-list
// snapshots to a local durable slot and a best-effort synced slot, and
// prefers the synced slot on load.
//
// Save and Load never surface errors. A failed save only risks data loss
// across a restart; the in-memory list stays the source of truth for the
// running process.
type Gateway struct {
	local  ports.KeyValueStore
	synced ports.KeyValueStore
}

// NewGateway creates a gateway over the local store and an optional
// synced store (nil disables the replica).
func NewGateway(local, synced ports.KeyValueStore) *Gateway {
	return &Gateway{local: local, synced: synced}
}

// Save serializes the list and writes it to both slots, best effort.
func (g *Gateway) Save(ctx context.Context, sessions []domain.Session) {
	records := make([]sessionRecord, len(sessions))
	for i, s := range sessions {
		records[i] = sessionRecord{
			ID:      s.ID,
			Date:    s.StartTime,
			Note:    s.Note,
			EndDate: s.EndTime,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		logging.Logger.Warn("Failed to serialize session snapshot", "error", err)
		return
	}

	if err := g.local.Set(ctx, snapshotKey, data); err != nil {
		logging.Logger.Warn("Failed to write local snapshot", "error", err)
	}

	if g.synced != nil {
		if err := g.synced.Set(ctx, snapshotKey, data); err != nil {
			logging.Logger.Warn("Failed to write synced snapshot", "error", err)
		}
	}
}

// Load returns the latest snapshot: synced slot first, then local, then
// an empty list. A present-but-corrupt blob is treated the same as an
// absent one.
func (g *Gateway) Load(ctx context.Context) []domain.Session {
	if g.synced != nil {
		if sessions, ok := g.loadSlot(ctx, g.synced, "synced"); ok {
			return sessions
		}
	}
	if sessions, ok := g.loadSlot(ctx, g.local, "local"); ok {
		return sessions
	}
	return []domain.Session{}
}

func (g *Gateway) loadSlot(ctx context.Context, kv ports.KeyValueStore, name string) ([]domain.Session, bool) {
	data, err := kv.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			logging.Logger.Warn("Failed to read snapshot slot", "slot", name, "error", err)
		}
		return nil, false
	}

	var records []sessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logging.Logger.Warn("Discarding undecodable snapshot", "slot", name, "error", err)
		return nil, false
	}

	sessions := make([]domain.Session, len(records))
	for i, r := range records {
		sessions[i] = domain.Session{
			ID:        r.ID,
			Note:      r.Note,
			StartTime: r.Date,
			EndTime:   r.EndDate,
		}
	}
	logging.Logger.Debug("Snapshot loaded", "slot", name, "sessions", len(sessions))
	return sessions, true
}
