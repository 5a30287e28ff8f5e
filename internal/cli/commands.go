// Package cli implements the non-TUI commands: export, import, stats and
// clear. Each command drives the same core the TUI does.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"boardkit/internal/board"
	"boardkit/internal/codec"
	"boardkit/internal/config"
	"boardkit/internal/domain"
	"boardkit/internal/persist"
	"boardkit/internal/storage"
)

// Dependencies holds everything the commands need.
type Dependencies struct {
	Config  *config.Config
	Store   storage.KV
	Adapter *persist.Adapter
	Logger  *slog.Logger

	closer func() error
}

// NewDependencies wires the storage backend named in the config and the
// persistence adapter over it.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	logger := slog.Default()

	var kv storage.KV
	var closer func() error

	switch cfg.Store {
	case config.StoreMemory:
		kv = storage.NewMemory()
	case config.StoreSQLite:
		db, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, "boardkit.db"), logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		kv = db
		closer = db.Close
	case config.StoreFile:
		kv = storage.NewFile(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}

	return &Dependencies{
		Config:  cfg,
		Store:   kv,
		Adapter: persist.New(kv, logger),
		Logger:  logger,
		closer:  closer,
	}, nil
}

// Close releases backend resources.
func (d *Dependencies) Close() error {
	if d.closer != nil {
		return d.closer()
	}
	return nil
}

// ExportCommand writes the stored board as a versioned export envelope.
func ExportCommand(deps *Dependencies, outPath string) error {
	b, ok := deps.Adapter.Load()
	if !ok {
		b = board.Empty()
	}

	data, err := codec.ExportJSON(b, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	if outPath == "" || outPath == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	stats := b.Stats(time.Now())
	fmt.Printf("Exported %d tasks in %d columns to %s\n", stats.Tasks, stats.Columns, outPath)
	return nil
}

// ImportCommand replaces the stored board with the envelope in the file.
// The current board is untouched unless the whole envelope checks out.
func ImportCommand(deps *Dependencies, inPath string) error {
	text, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	data, err := codec.Import(text)
	if err != nil {
		return err
	}
	b, err := board.FromSnapshot(data, time.Now())
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	if !deps.Adapter.Save(b) {
		return fmt.Errorf("failed to persist the imported board")
	}

	stats := b.Stats(time.Now())
	fmt.Printf("Imported %d tasks in %d columns\n", stats.Tasks, stats.Columns)
	return nil
}

// StatsCommand prints a summary of the stored board.
func StatsCommand(deps *Dependencies) error {
	b, ok := deps.Adapter.Load()
	if !ok {
		fmt.Println("No board stored yet")
		return nil
	}

	stats := b.Stats(time.Now())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Tasks\t%d\n", stats.Tasks)
	fmt.Fprintf(w, "Columns\t%d\n", stats.Columns)
	for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		fmt.Fprintf(w, "  %s\t%d\n", p, stats.ByPriority[p])
	}
	fmt.Fprintf(w, "Overdue\t%d\n", stats.Overdue)
	fmt.Fprintf(w, "Due today\t%d\n", stats.DueToday)
	if !stats.LastModified.IsZero() {
		fmt.Fprintf(w, "Last modified\t%s\n", stats.LastModified.Format(time.RFC3339))
	}
	return w.Flush()
}

// ClearCommand wipes the stored board.
func ClearCommand(deps *Dependencies) error {
	if !deps.Adapter.Wipe() {
		return fmt.Errorf("failed to remove the stored board")
	}
	fmt.Println("Board cleared")
	return nil
}
