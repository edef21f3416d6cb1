/*
Package sqlite provides the SQLite-backed persistence adapters.

PURPOSE:
  Implements both persistence interfaces of the calculator with one
  database file:

    state.Adapter:    flat settings key-value map (the form fields)
    daystate.Adapter: per-year painted-day snapshots

KEY TABLES:
  settings:   key TEXT PRIMARY KEY, value TEXT
  day_states: (year, month, day) composite primary key, status TEXT

  SaveYear replaces a year wholesale inside a transaction; the day-state
  store already debounces, so each write is one small atomic snapshot.

WAL MODE:
  The database is opened with WAL for better crash recovery and so reads
  during a flush don't block.

USAGE:
  store, err := sqlite.New("./kalkulator.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  session := state.NewSession(ctx, store)
  days := daystate.NewStore(store)

SEE ALSO:
  - state/state.go: the settings consumer
  - daystate/store.go: the day-state consumer
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fastlonn/kalkulator/calendar"
	"github.com/fastlonn/kalkulator/daystate"
)

// Store implements state.Adapter and daystate.Adapter using SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Form fields, one row per key
	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	-- Painted days, one row per marked working day
	CREATE TABLE IF NOT EXISTS day_states (
		year   INTEGER NOT NULL,
		month  INTEGER NOT NULL,
		day    INTEGER NOT NULL,
		status TEXT NOT NULL,
		PRIMARY KEY (year, month, day)
	);

	CREATE INDEX IF NOT EXISTS idx_day_states_year ON day_states(year);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// state.Adapter - settings key-value map
// =============================================================================

func (s *Store) Load(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (s *Store) Save(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// =============================================================================
// daystate.Adapter - per-year day snapshots
// =============================================================================

func (s *Store) LoadYear(ctx context.Context, year int) (map[calendar.Date]daystate.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT month, day, status FROM day_states WHERE year = ?`, year)
	if err != nil {
		return nil, fmt.Errorf("load day states for %d: %w", year, err)
	}
	defer rows.Close()

	states := make(map[calendar.Date]daystate.Status)
	for rows.Next() {
		var month, day int
		var raw string
		if err := rows.Scan(&month, &day, &raw); err != nil {
			return nil, fmt.Errorf("scan day state: %w", err)
		}
		status, ok := daystate.ParseStatus(raw)
		if !ok {
			continue // unknown tag from a newer schema: skip, don't fail
		}
		states[calendar.NewDate(year, time.Month(month), day)] = status
	}
	return states, rows.Err()
}

func (s *Store) SaveYear(ctx context.Context, year int, states map[calendar.Date]daystate.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin day-state snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_states WHERE year = ?`, year); err != nil {
		return fmt.Errorf("clear year %d: %w", year, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO day_states (year, month, day, status) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare day-state insert: %w", err)
	}
	defer stmt.Close()

	for d, status := range states {
		if _, err := stmt.ExecContext(ctx, d.Year, int(d.Month), d.Day, string(status)); err != nil {
			return fmt.Errorf("insert day state %s: %w", d, err)
		}
	}

	return tx.Commit()
}
