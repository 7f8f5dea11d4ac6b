package insights

import "sort"

// BuildPivot reshapes per-year ranked records into one row per distinct
// song identity, with a rank-or-absent value for every observed year.
// The result is deterministic for a fixed input: rows appear in
// first-seen order, representative metadata comes from the first record
// of each identity, and a duplicate (identity, year) pair keeps the
// lowest rank. Score is the sum of (100 - rank + 1) over present years.
// An empty input yields an empty pivot, not an error.
func BuildPivot(records []Record) *Pivot {
	p := &Pivot{byID: make(map[string]int)}

	yearSet := make(map[int]bool)
	for _, rec := range records {
		yearSet[rec.Year] = true
	}
	for year := range yearSet {
		p.Years = append(p.Years, year)
	}
	sort.Ints(p.Years)

	for _, rec := range records {
		id := SongID(rec.Title, rec.Artists)
		idx, ok := p.byID[id]
		if !ok {
			row := Row{
				Title:     rec.Title,
				Artists:   append([]string(nil), rec.Artists...),
				SongID:    id,
				SpotifyID: rec.SpotifyID,
				Ranks:     make(map[int]int, len(p.Years)),
			}
			for _, year := range p.Years {
				row.Ranks[year] = AbsentRank
			}
			idx = len(p.Rows)
			p.Rows = append(p.Rows, row)
			p.byID[id] = idx
		}
		if rec.Rank <= AbsentRank {
			continue
		}
		current := p.Rows[idx].Ranks[rec.Year]
		if current == AbsentRank || rec.Rank < current {
			p.Rows[idx].Ranks[rec.Year] = rec.Rank
		}
	}

	for i := range p.Rows {
		var appearances, score int
		for _, year := range p.Years {
			if rank := p.Rows[i].Ranks[year]; rank != AbsentRank {
				appearances++
				score += 100 - rank + 1
			}
		}
		p.Rows[i].ListAppearances = appearances
		p.Rows[i].Score = score
	}

	return p
}
