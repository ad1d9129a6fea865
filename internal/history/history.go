// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of conversion runs in SQLite. Every
// invocation that touches the backend gets a row, with per-document
// outcomes attached.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/rulegen/pkg/types"
)

// DefaultPath is the ledger location used when none is configured.
const DefaultPath = ".rulegen/history.db"

// Ledger records conversion runs in a SQLite database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			command TEXT NOT NULL,
			model TEXT,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			converted INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			doc_path TEXT NOT NULL,
			rule_path TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run and its per-file outcomes.
func (l *Ledger) Record(ctx context.Context, run types.Run) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, command, model, started_at, finished_at, converted, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Command, run.Model,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Converted, run.Failed,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_files (run_id, doc_path, rule_path, status, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range run.Files {
		_, err := stmt.ExecContext(ctx,
			run.ID, f.DocPath, f.RulePath, string(f.Status), f.Error, f.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("inserting file record for %s: %w", f.DocPath, err)
		}
	}

	return tx.Commit()
}

// Recent returns up to limit runs, newest first, each with its file
// records in insertion order. A non-positive limit selects 20.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, command, model, started_at, finished_at, converted, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var started, finished string
		if err := rows.Scan(&run.ID, &run.Command, &run.Model,
			&started, &finished, &run.Converted, &run.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parsing started_at of run %s: %w", run.ID, err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parsing finished_at of run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		files, err := l.runFiles(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Files = files
	}
	return runs, nil
}

func (l *Ledger) runFiles(ctx context.Context, runID string) ([]types.FileRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT doc_path, rule_path, status, error, duration_ms
		 FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying file records: %w", err)
	}
	defer rows.Close()

	var files []types.FileRecord
	for rows.Next() {
		var f types.FileRecord
		var status string
		var durationMS int64
		if err := rows.Scan(&f.DocPath, &f.RulePath, &status, &f.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning file record: %w", err)
		}
		f.Status = types.FileStatus(status)
		f.Duration = time.Duration(durationMS) * time.Millisecond
		files = append(files, f)
	}
	return files, rows.Err()
}
