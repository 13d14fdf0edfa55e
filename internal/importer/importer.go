package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/planforge/internal/catalog"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	ExercisesUpserted int64
	EntriesInvalid    int
}

// Store is the storage surface the importer writes to.
type Store interface {
	UpsertExercises(ctx context.Context, entries []catalog.Exercise) (int64, error)
}

// Importer reads exercise catalog JSON files from a directory and
// upserts them into the database. A SQLite state DB records which files
// were already imported so re-runs only touch new or changed files.
type Importer struct {
	store  Store
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil, in which case every
// file is processed on every run.
func New(store Store, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{store: store, state: state, log: log, dryRun: dryRun}
}

// Import processes all .json catalog files in dir. Each file holds an
// array of catalog entries. Files that fail to read or parse are
// counted and skipped; a storage failure aborts the run.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return &imp.stats, fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, f := range files {
		skip, err := imp.alreadyImported(f)
		if err != nil {
			imp.log.Warn("state check failed", "file", f, "error", err)
		}
		if skip {
			imp.stats.FilesSkipped++
			continue
		}

		entries, invalid, err := readCatalogFile(f)
		if err != nil {
			imp.log.Warn("parse failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}
		imp.stats.EntriesInvalid += invalid

		if len(entries) == 0 {
			imp.stats.FilesSkipped++
			continue
		}

		imp.stats.FilesProcessed++
		if imp.dryRun {
			imp.stats.ExercisesUpserted += int64(len(entries))
			continue
		}

		upserted, err := imp.batchUpsert(ctx, entries)
		if err != nil {
			return &imp.stats, fmt.Errorf("upserting from %s: %w", filepath.Base(f), err)
		}
		imp.stats.ExercisesUpserted += upserted

		if err := imp.markImported(f); err != nil {
			imp.log.Warn("state update failed", "file", f, "error", err)
		}
	}

	return &imp.stats, nil
}

// batchUpsert writes entries in chunks to stay within PostgreSQL
// parameter limits. 7 params per row, max 65535 params, use 5000 rows.
func (imp *Importer) batchUpsert(ctx context.Context, entries []catalog.Exercise) (int64, error) {
	const batchSize = 5000
	var total int64

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		n, err := imp.store.UpsertExercises(ctx, entries[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (imp *Importer) alreadyImported(path string) (bool, error) {
	if imp.state == nil {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	hash, err := HashFile(path)
	if err != nil {
		return false, err
	}
	return imp.state.IsImported(filepath.Base(path), info.Size(), hash)
}

func (imp *Importer) markImported(path string) error {
	if imp.state == nil {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	hash, err := HashFile(path)
	if err != nil {
		return err
	}
	return imp.state.MarkImported(filepath.Base(path), info.Size(), hash)
}

// readCatalogFile parses one catalog JSON file. Entries missing an ID
// or name are dropped and counted rather than failing the file.
func readCatalogFile(path string) ([]catalog.Exercise, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	var raw []catalog.Exercise
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding catalog: %w", err)
	}

	entries := make([]catalog.Exercise, 0, len(raw))
	invalid := 0
	for _, e := range raw {
		if e.ID == "" || e.Name == "" {
			invalid++
			continue
		}
		entries = append(entries, e)
	}
	return entries, invalid, nil
}
