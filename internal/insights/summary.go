package insights

// Summary holds headline statistics for the whole dataset.
type Summary struct {
	UniqueSongs          int
	TotalChartEntries    int
	AvgAppearances       float64
	FirstYear            int
	LastYear             int
	YearsCount           int
	MostConsistentArtist string
}

// Summarize computes high-level stats over the pivot. TotalChartEntries
// counts every (track, year) cell with a present rank, so it can exceed
// UniqueSongs when tracks repeat across years.
func Summarize(p *Pivot) Summary {
	s := Summary{
		UniqueSongs: len(p.Rows),
		FirstYear:   p.FirstYear(),
		LastYear:    p.LastYear(),
		YearsCount:  len(p.Years),
	}

	for _, row := range p.Rows {
		s.TotalChartEntries += row.ListAppearances
	}
	if len(p.Rows) > 0 {
		s.AvgAppearances = float64(s.TotalChartEntries) / float64(len(p.Rows))
	}

	if artists := MostPopularArtists(p, 1); len(artists) > 0 {
		s.MostConsistentArtist = artists[0].Artist
	}
	return s
}
