package store

import (
	"encoding/json"
	"fmt"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

// ReadTracks returns every stored record ordered by year then rank.
func (s *Store) ReadTracks() ([]insights.Record, error) {
	rows, err := s.db.Query(`
		SELECT year, rank, name, artists, spotify_id, link
		FROM Track
		ORDER BY year, rank`)
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	var records []insights.Record
	for rows.Next() {
		var rec insights.Record
		var artists string
		if err := rows.Scan(&rec.Year, &rec.Rank, &rec.Title, &artists, &rec.SpotifyID, &rec.Link); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		if err := json.Unmarshal([]byte(artists), &rec.Artists); err != nil {
			return nil, fmt.Errorf("decoding artists for %q: %w", rec.Title, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracks: %w", err)
	}
	return records, nil
}

// Years returns the distinct playlist years present in the store,
// ascending.
func (s *Store) Years() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT year FROM Track ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("querying years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}
