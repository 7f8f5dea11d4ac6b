package insights

import (
	"sort"
	"strings"
)

// ByArtist returns every row crediting the named artist. Matching is
// case-insensitive against each individual credit, not the joined list.
func ByArtist(p *Pivot, artist string) []Row {
	want := strings.ToLower(strings.TrimSpace(artist))
	if want == "" {
		return nil
	}

	var out []Row
	for _, row := range p.Rows {
		for _, credit := range row.Artists {
			if strings.ToLower(strings.TrimSpace(credit)) == want {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// ByTitle returns every row whose title contains the given substring,
// case-insensitively.
func ByTitle(p *Pivot, title string) []Row {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return nil
	}

	var out []Row
	for _, row := range p.Rows {
		if strings.Contains(strings.ToLower(row.Title), want) {
			out = append(out, row)
		}
	}
	return out
}

// YearEntry is one position of a single year's list.
type YearEntry struct {
	Rank int
	Row
}

// YearList slices one observed year out of the pivot, in rank order. An
// unobserved year yields an empty list.
func YearList(p *Pivot, year int) []YearEntry {
	var out []YearEntry
	for _, row := range p.Rows {
		if rank := row.Ranks[year]; rank != AbsentRank {
			out = append(out, YearEntry{Rank: rank, Row: row})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}
