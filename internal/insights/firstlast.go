package insights

// FirstToLast partitions the first observed year's tracks by what
// happened to them in later lists. No row appears in both NeverReturned
// and Persisted; PersistedToLast and OnlyNextYear are subsets of
// Persisted.
type FirstToLast struct {
	FirstYear int
	LastYear  int

	// NeverReturned charted in the first year and in no later year.
	NeverReturned []Row
	// Persisted charted in the first year and at least one later year.
	Persisted []Row
	// PersistedToLast also charts in the final observed year.
	PersistedToLast []Row
	// OnlyNextYear persisted exactly once, in the year immediately
	// after the first, with the rank movement between the two years.
	OnlyNextYear []RankShift
}

// RankShift pairs a row with its movement between two years. Delta is
// FromRank minus ToRank, so a positive delta means the track climbed.
type RankShift struct {
	Row
	FromYear int
	ToYear   int
	FromRank int
	ToRank   int
	Delta    int
}

// CompareFirstToLast computes the attrition of the first year's list.
// With fewer than two observed years every first-year track lands in
// NeverReturned and the other partitions stay empty.
func CompareFirstToLast(p *Pivot) FirstToLast {
	var res FirstToLast
	if len(p.Years) == 0 {
		return res
	}
	res.FirstYear = p.Years[0]
	res.LastYear = p.Years[len(p.Years)-1]

	for _, row := range p.Rows {
		if row.Ranks[res.FirstYear] == AbsentRank {
			continue
		}

		laterCount := 0
		for _, year := range p.Years[1:] {
			if row.Ranks[year] != AbsentRank {
				laterCount++
			}
		}
		if laterCount == 0 {
			res.NeverReturned = append(res.NeverReturned, row)
			continue
		}

		res.Persisted = append(res.Persisted, row)
		if row.Ranks[res.LastYear] != AbsentRank {
			res.PersistedToLast = append(res.PersistedToLast, row)
		}

		next := p.Years[1]
		if laterCount == 1 && row.Ranks[next] != AbsentRank {
			res.OnlyNextYear = append(res.OnlyNextYear, RankShift{
				Row:      row,
				FromYear: res.FirstYear,
				ToYear:   next,
				FromRank: row.Ranks[res.FirstYear],
				ToRank:   row.Ranks[next],
				Delta:    row.Ranks[res.FirstYear] - row.Ranks[next],
			})
		}
	}
	return res
}
