package persist

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardkit/internal/board"
)

type saveRecorder struct {
	mu     sync.Mutex
	boards []board.Board
}

func (r *saveRecorder) save(b board.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = append(r.boards, b)
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

func (r *saveRecorder) last() board.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.boards[len(r.boards)-1]
}

func boardStamped(t *testing.T, stamp time.Time) board.Board {
	t.Helper()
	b := board.Empty()
	b, _, err := b.AddColumn(board.ColumnDraft{Title: "Todo"}, stamp)
	require.NoError(t, err)
	return b
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	rec := &saveRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.save)
	defer d.Cancel()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var want board.Board
	for i := 0; i < 5; i++ {
		want = boardStamped(t, base.Add(time.Duration(i)*time.Second))
		d.Trigger(want)
	}

	time.Sleep(120 * time.Millisecond)

	require.Equal(t, 1, rec.count())
	assert.Equal(t, want, rec.last())
}

func TestDebouncerSavesAgainAfterQuietPeriod(t *testing.T) {
	rec := &saveRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.save)
	defer d.Cancel()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d.Trigger(boardStamped(t, base))
	time.Sleep(80 * time.Millisecond)
	d.Trigger(boardStamped(t, base.Add(time.Minute)))
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, 2, rec.count())
}

func TestDebouncerCancelDropsPendingSave(t *testing.T) {
	rec := &saveRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.save)

	d.Trigger(boardStamped(t, time.Now()))
	d.Cancel()
	time.Sleep(100 * time.Millisecond)

	assert.Zero(t, rec.count())
}

func TestDebouncerFlushSavesImmediately(t *testing.T) {
	rec := &saveRecorder{}
	d := NewDebouncer(time.Hour, rec.save)
	defer d.Cancel()

	want := boardStamped(t, time.Now())
	d.Trigger(want)
	d.Flush()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, want, rec.last())

	// a flush with nothing pending is a no-op
	d.Flush()
	assert.Equal(t, 1, rec.count())
}
