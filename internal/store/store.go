package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists imported track records in SQLite, so the raw CSV is
// parsed once and analyzed many times.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	// artists holds the credit list as a JSON array, preserving order.
	query := `
CREATE TABLE IF NOT EXISTS Track (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  year INTEGER NOT NULL,
  rank INTEGER NOT NULL,
  name TEXT NOT NULL,
  artists TEXT NOT NULL,
  spotify_id TEXT,
  link TEXT,
  UNIQUE (year, rank)
);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("creating Track table: %w", err)
	}
	return nil
}

// HasTracks reports whether anything has been imported yet.
func (s *Store) HasTracks() (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM Track)").Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking for tracks: %w", err)
	}
	return exists, nil
}

// CountTracks returns the number of stored records.
func (s *Store) CountTracks() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Track").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tracks: %w", err)
	}
	return count, nil
}
