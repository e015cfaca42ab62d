// Package history persists analyzed queries to a local SQLite
// database. The core engines never touch this store; it exists for the
// CLI's history commands.
package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

// Entry is one recorded query.
type Entry struct {
	ID       string
	Query    string
	Platform platform.Platform
	RunAt    time.Time
}

// Store is a SQLite-backed query history.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the history database at path and runs any
// pending migrations. Use ":memory:" for an in-memory store.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordQuery stores one query with its platform and timestamp.
func (s *Store) RecordQuery(query string, p platform.Platform, at time.Time) error {
	if s.db == nil {
		return fmt.Errorf("history database not opened")
	}

	id := uuid.New().String()
	s.logger.Debug("recording query", slog.String("id", id), slog.String("platform", p.String()))

	_, err := s.db.Exec(
		`INSERT INTO query_history (id, query, platform, run_at) VALUES (?, ?, ?, ?)`,
		id, query, p.String(), at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// List returns all recorded queries, most recent first.
func (s *Store) List() ([]Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("history database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, query, platform, run_at FROM query_history ORDER BY run_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var p string
		if err := rows.Scan(&e.ID, &e.Query, &p, &e.RunAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Platform = platform.Platform(p)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

// Clear removes every recorded query.
func (s *Store) Clear() error {
	if s.db == nil {
		return fmt.Errorf("history database not opened")
	}

	res, err := s.db.Exec(`DELETE FROM query_history`)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		s.logger.Debug("cleared history", slog.Int64("entries", n))
	}
	return nil
}
