// Package persist serializes board snapshots into an injected key-value
// store and schedules debounced auto-saves.
//
// Failures here never escape as errors: a failed save or a corrupt stored
// value must not crash the in-memory board, so every operation converts
// problems into a boolean result and a log line.
package persist

import (
	"encoding/json"
	"log/slog"
	"time"

	"boardkit/internal/board"
	"boardkit/internal/config"
	"boardkit/internal/storage"
)

// Adapter reads and writes board snapshots and preferences.
type Adapter struct {
	kv     storage.KV
	logger *slog.Logger
	now    func() time.Time
}

// New creates an adapter over the given store.
func New(kv storage.KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{kv: kv, logger: logger, now: time.Now}
}

// snapshot is the persisted shape: the board fields plus a lastSaved stamp.
type snapshot struct {
	board.Board
	LastSaved time.Time `json:"lastSaved"`
}

// Save writes the snapshot under the board key, stamping lastSaved.
// It reports success; it never panics or propagates storage errors.
func (a *Adapter) Save(b board.Board) bool {
	if !a.kv.Available() {
		a.logger.Warn("board save skipped, storage unavailable")
		return false
	}
	data, err := json.Marshal(snapshot{Board: b, LastSaved: a.now()})
	if err != nil {
		a.logger.Error("board save failed to marshal", "error", err)
		return false
	}
	if err := a.kv.Set(storage.BoardKey, data); err != nil {
		a.logger.Warn("board save failed", "error", err)
		return false
	}
	return true
}

// Load reads the stored snapshot. A missing, corrupt or structurally
// invalid value reports ok=false; callers treat that as "start empty".
func (a *Adapter) Load() (board.Board, bool) {
	data, ok := a.kv.Get(storage.BoardKey)
	if !ok {
		return board.Board{}, false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.logger.Warn("stored board is corrupt, starting empty", "error", err)
		return board.Board{}, false
	}
	if snap.Tasks == nil || snap.Columns == nil || snap.ColumnOrder == nil {
		a.logger.Warn("stored board is structurally incomplete, starting empty")
		return board.Board{}, false
	}
	if err := snap.Verify(); err != nil {
		a.logger.Warn("stored board violates invariants, starting empty", "error", err)
		return board.Board{}, false
	}
	return snap.Board, true
}

// Wipe removes the stored board snapshot.
func (a *Adapter) Wipe() bool {
	if err := a.kv.Remove(storage.BoardKey); err != nil {
		a.logger.Warn("board wipe failed", "error", err)
		return false
	}
	return true
}

// SavePrefs writes user preferences under the prefs key.
func (a *Adapter) SavePrefs(p config.Prefs) bool {
	data, err := json.Marshal(p)
	if err != nil {
		a.logger.Error("prefs save failed to marshal", "error", err)
		return false
	}
	if err := a.kv.Set(storage.PrefsKey, data); err != nil {
		a.logger.Warn("prefs save failed", "error", err)
		return false
	}
	return true
}

// LoadPrefs reads user preferences, falling back to defaults when absent
// or corrupt.
func (a *Adapter) LoadPrefs() config.Prefs {
	data, ok := a.kv.Get(storage.PrefsKey)
	if !ok {
		return config.DefaultPrefs()
	}
	var p config.Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		a.logger.Warn("stored prefs are corrupt, using defaults", "error", err)
		return config.DefaultPrefs()
	}
	return p
}
