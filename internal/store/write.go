package store

import (
	"encoding/json"
	"fmt"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

// ImportTracks inserts a batch of records transactionally. (year, rank)
// is unique, so re-importing a corrected CSV overwrites the previous
// entries instead of duplicating them.
func (s *Store) ImportTracks(records []insights.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO Track (year, rank, name, artists, spotify_id, link)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		artists, err := json.Marshal(rec.Artists)
		if err != nil {
			return fmt.Errorf("encoding artists for %q: %w", rec.Title, err)
		}
		if _, err := stmt.Exec(rec.Year, rec.Rank, rec.Title, string(artists), rec.SpotifyID, rec.Link); err != nil {
			return fmt.Errorf("inserting track %q: %w", rec.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
