// Package store keeps a sqlite history of ranking runs. Runs are keyed by
// graph fingerprint so a graph that was ranked before can be answered
// from the cache.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/felixgeelhaar/coffman/internal/report"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// ErrNotFound is returned by Lookup when no run matches.
var ErrNotFound = errors.New("ranking not found")

// Store is a sqlite-backed ranking history.
type Store struct {
	db *sqlx.DB
}

type rankingRow struct {
	RunID       string `db:"run_id"`
	Fingerprint string `db:"fingerprint"`
	Source      string `db:"source"`
	Name        string `db:"name"`
	Tasks       int    `db:"tasks"`
	OrderJSON   string `db:"order_json"`
	CreatedAt   int64  `db:"created_at"`
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := configure(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func configure(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ranking (
		run_id TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		source TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		tasks INTEGER NOT NULL,
		order_json TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_ranking_fingerprint ON ranking(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_ranking_created_at ON ranking(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a run.
func (s *Store) Save(ctx context.Context, r *report.Report) error {
	order, err := json.Marshal(r.Order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	row := rankingRow{
		RunID:       r.RunID,
		Fingerprint: r.Fingerprint,
		Source:      r.Source,
		Name:        r.Name,
		Tasks:       r.Tasks,
		OrderJSON:   string(order),
		CreatedAt:   r.CreatedAt.UnixNano(),
	}

	query := `
	INSERT INTO ranking (run_id, fingerprint, source, name, tasks, order_json, created_at)
	VALUES (:run_id, :fingerprint, :source, :name, :tasks, :order_json, :created_at)
	`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}
	return nil
}

// Lookup returns the most recent run for fingerprint, marked as cached.
func (s *Store) Lookup(ctx context.Context, fingerprint string) (*report.Report, error) {
	var row rankingRow
	query := `
	SELECT run_id, fingerprint, source, name, tasks, order_json, created_at
	FROM ranking WHERE fingerprint = ?
	ORDER BY created_at DESC, rowid DESC LIMIT 1
	`
	if err := s.db.GetContext(ctx, &row, query, fingerprint); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query ranking: %w", err)
	}

	r, err := row.toReport()
	if err != nil {
		return nil, err
	}
	r.Cached = true
	return r, nil
}

// List returns up to limit runs, newest first. A non-positive limit
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]*report.Report, error) {
	query := `
	SELECT run_id, fingerprint, source, name, tasks, order_json, created_at
	FROM ranking ORDER BY created_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []rankingRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}

	reports := make([]*report.Report, 0, len(rows))
	for _, row := range rows {
		r, err := row.toReport()
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Clear deletes every recorded run and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM ranking")
	if err != nil {
		return 0, fmt.Errorf("clear rankings: %w", err)
	}
	return res.RowsAffected()
}

func (row rankingRow) toReport() (*report.Report, error) {
	var order []taskgraph.TaskID
	if err := json.Unmarshal([]byte(row.OrderJSON), &order); err != nil {
		return nil, fmt.Errorf("decode order of run %s: %w", row.RunID, err)
	}
	created := time.Unix(0, row.CreatedAt).UTC()
	return report.FromOrder(row.RunID, row.Source, row.Name, row.Fingerprint, order, created), nil
}
