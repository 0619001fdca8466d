package progress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// dayFormat is the calendar-day stamp used for daily sets and the visit
// history. All day keys are in local time.
const dayFormat = "2006-01-02"

// Store persists learner progress: mastered/favorite sets, per-day
// learned and mastered sets, the visit history and the append-only test
// result log.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mastered_words (
			word_id INTEGER PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS favorite_words (
			word_id INTEGER PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS daily_learned (
			day     TEXT NOT NULL,
			word_id INTEGER NOT NULL,
			PRIMARY KEY (day, word_id)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_mastered (
			day     TEXT NOT NULL,
			word_id INTEGER NOT NULL,
			PRIMARY KEY (day, word_id)
		)`,
		`CREATE TABLE IF NOT EXISTS visit_days (
			day TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS test_results (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL DEFAULT '',
			date       TEXT NOT NULL,
			type       TEXT NOT NULL,
			score      INTEGER NOT NULL,
			correct    INTEGER NOT NULL,
			wrong      INTEGER NOT NULL,
			total      INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXIO_DB environment variable
// 2. $XDG_DATA_HOME/lexio/lexio.db
// 3. ~/.local/share/lexio/lexio.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXIO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexio", "lexio.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func dayStamp(t time.Time) string {
	return t.Format(dayFormat)
}
