package insights

import (
	"sort"
	"strings"
)

// ArtistStat aggregates one credited artist across the whole pivot.
type ArtistStat struct {
	Artist           string
	TrackCount       int
	TotalAppearances int
	AvgScore         float64
}

// MostPopularArtists counts how many distinct tracks each credited
// artist contributed across all years, keeping artists with at least
// minTracks tracks. A joint credit counts for every listed artist.
// Results are sorted by track count, then name for a stable order.
func MostPopularArtists(p *Pivot, minTracks int) []ArtistStat {
	type agg struct {
		tracks      int
		appearances int
		scoreSum    int
	}
	stats := make(map[string]*agg)

	for _, row := range p.Rows {
		for _, artist := range row.Artists {
			name := strings.TrimSpace(artist)
			if name == "" {
				continue
			}
			a, ok := stats[name]
			if !ok {
				a = &agg{}
				stats[name] = a
			}
			a.tracks++
			a.appearances += row.ListAppearances
			a.scoreSum += row.Score
		}
	}

	var out []ArtistStat
	for name, a := range stats {
		if a.tracks < minTracks {
			continue
		}
		out = append(out, ArtistStat{
			Artist:           name,
			TrackCount:       a.tracks,
			TotalAppearances: a.appearances,
			AvgScore:         float64(a.scoreSum) / float64(a.tracks),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TrackCount != out[j].TrackCount {
			return out[i].TrackCount > out[j].TrackCount
		}
		return out[i].Artist < out[j].Artist
	})
	return out
}
