// Package store keeps a history of shear analyses in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexiusacademia/goshear/internal/shear"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Run is a saved analysis
type Run struct {
	ID          int64
	Name        string
	Combination string
	Length      float64
	Forces      []shear.Force
	Segments    []shear.Segment
	MaxAbsShear float64
	CreatedAt   time.Time
}

// Store is the SQLite-backed history
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the history database at path
func Open(path string, logger *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("opened history database", zap.String("path", path))
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		combination TEXT NOT NULL DEFAULT '',
		length REAL NOT NULL,
		forces JSON NOT NULL,
		segments JSON NOT NULL,
		max_abs_shear REAL NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save records a run and returns its ID. CreatedAt defaults to now.
func (s *Store) Save(ctx context.Context, run Run) (int64, error) {
	forces, err := json.Marshal(run.Forces)
	if err != nil {
		return 0, fmt.Errorf("marshal forces: %w", err)
	}
	segments, err := json.Marshal(run.Segments)
	if err != nil {
		return 0, fmt.Errorf("marshal segments: %w", err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (name, combination, length, forces, segments, max_abs_shear, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.Name, run.Combination, run.Length, string(forces), string(segments), run.MaxAbsShear,
		run.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	s.logger.Debug("saved run", zap.Int64("id", id), zap.String("name", run.Name))
	return id, nil
}

// List returns the most recent runs, newest first
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, combination, length, forces, segments, max_abs_shear, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns a single run
func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, combination, length, forces, segments, max_abs_shear, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run              Run
		forces, segments string
		created          string
	)
	if err := sc.Scan(&run.ID, &run.Name, &run.Combination, &run.Length, &forces, &segments, &run.MaxAbsShear, &created); err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(forces), &run.Forces); err != nil {
		return Run{}, fmt.Errorf("failed to unmarshal forces: %w", err)
	}
	if err := json.Unmarshal([]byte(segments), &run.Segments); err != nil {
		return Run{}, fmt.Errorf("failed to unmarshal segments: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	run.CreatedAt = t
	return run, nil
}
