package syncserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"replog/internal/logging"
)

// slotEntry is one stored key-value slot with its last-writer timestamp.
type slotEntry struct {
	UpdatedAt time.Time `json:"updated_at"`
	Value     []byte    `json:"value"`
}

// stateFile is the on-disk layout of the sync server state.
type stateFile struct {
	Slots     map[string]slotEntry `json:"slots"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// loadState reads the state file. A missing or undecodable file yields an
// empty slot map; the server must come up even after a bad shutdown.
func loadState(path string) map[string]slotEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read sync state file", "error", err, "path", path)
		}
		return make(map[string]slotEntry)
	}

	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		logging.Logger.Warn("Discarding undecodable sync state file", "error", err, "path", path)
		return make(map[string]slotEntry)
	}
	if state.Slots == nil {
		state.Slots = make(map[string]slotEntry)
	}
	return state.Slots
}

// saveState writes the slot map to disk with file locking.
func saveState(path string, slots map[string]slotEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	state := stateFile{
		Slots:     slots,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}
