package persist

import (
	"sync"
	"time"

	"boardkit/internal/board"
)

// Debouncer coalesces bursts of board changes into a single deferred save
// of the latest snapshot. The window restarts on every trigger; only the
// most recent snapshot is ever written.
//
// The timer callback runs on its own goroutine, so internal state is
// mutex-guarded. The flush function only ever receives an immutable board
// value.
type Debouncer struct {
	window time.Duration
	flush  func(board.Board)

	mu      sync.Mutex
	timer   *time.Timer
	latest  board.Board
	pending bool
}

// NewDebouncer creates a debouncer that calls flush after window of quiet.
func NewDebouncer(window time.Duration, flush func(board.Board)) *Debouncer {
	return &Debouncer{window: window, flush: flush}
}

// Trigger records the latest snapshot and restarts the quiet window.
func (d *Debouncer) Trigger(b board.Board) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest = b
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	b := d.latest
	d.pending = false
	d.mu.Unlock()

	d.flush(b)
}

// Cancel drops any pending save. Used on teardown and after a board wipe
// so stale data is never written back.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}

// Flush writes any pending snapshot immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if !d.pending {
		d.mu.Unlock()
		return
	}
	b := d.latest
	d.pending = false
	d.mu.Unlock()

	d.flush(b)
}
