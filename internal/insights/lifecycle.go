package insights

import "sort"

// DefaultDreamRunTop is the rank cutoff for dream run detection.
const DefaultDreamRunTop = 10

// DreamRun is a single-year spike: a top-N rank followed by complete
// absence in the next observed year.
type DreamRun struct {
	Row
	DreamYear int
	DreamRank int
}

// DreamRuns scans each row's years in chronological order and reports
// the first year whose rank is within topN and whose immediately
// following observed year is absent. At most one dream run is reported
// per row, even if the pattern recurs later. Adjacency is between
// observed years; calendar gaps are not checked.
func DreamRuns(p *Pivot, topN int) []DreamRun {
	var runs []DreamRun
	for _, row := range p.Rows {
		for i := 0; i+1 < len(p.Years); i++ {
			curr := row.Ranks[p.Years[i]]
			next := row.Ranks[p.Years[i+1]]
			if curr >= 1 && curr <= topN && next == AbsentRank {
				runs = append(runs, DreamRun{Row: row, DreamYear: p.Years[i], DreamRank: curr})
				break
			}
		}
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].DreamYear != runs[j].DreamYear {
			return runs[i].DreamYear > runs[j].DreamYear
		}
		return runs[i].DreamRank < runs[j].DreamRank
	})
	return runs
}

const (
	RecoveryClimbed  = "climbed"
	RecoveryReturned = "returned"
)

// Recovery is a track that improved its rank year-over-year or came
// back onto the list after an absence.
type Recovery struct {
	Row
	Type         string
	RecoveryYear int
	PreviousRank int
	NewRank      int
}

// OnTheUp finds tracks with at least two appearances that climbed ranks
// or returned after dropping off the list. Years are walked in
// chronological order carrying an off-list flag; the first qualifying
// transition per row is reported and the scan stops there.
func OnTheUp(p *Pivot) []Recovery {
	var out []Recovery
	for _, row := range p.Rows {
		if row.ListAppearances < 2 {
			continue
		}
		offList := false
		for i := 0; i+1 < len(p.Years); i++ {
			curr := row.Ranks[p.Years[i]]
			next := row.Ranks[p.Years[i+1]]

			if curr != AbsentRank && next == AbsentRank {
				offList = true
			}
			if next == AbsentRank {
				continue
			}
			climbed := curr != AbsentRank && curr > next
			if climbed || offList {
				kind := RecoveryClimbed
				if offList {
					kind = RecoveryReturned
				}
				out = append(out, Recovery{
					Row:          row,
					Type:         kind,
					RecoveryYear: p.Years[i+1],
					PreviousRank: curr,
					NewRank:      next,
				})
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RecoveryYear != out[j].RecoveryYear {
			return out[i].RecoveryYear > out[j].RecoveryYear
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Streak is a run of consecutive years on the list ending with the most
// recent observed year.
type Streak struct {
	Row
	StreakLength    int
	StreakStartYear int
}

// ActiveStreaks reports rows charting in the latest observed year with
// at least minConsecutive consecutive trailing years on the list.
func ActiveStreaks(p *Pivot, minConsecutive int) []Streak {
	if len(p.Years) == 0 {
		return nil
	}

	var out []Streak
	for _, row := range p.Rows {
		if row.Ranks[p.Years[len(p.Years)-1]] == AbsentRank {
			continue
		}
		length := 0
		for i := len(p.Years) - 1; i >= 0; i-- {
			if row.Ranks[p.Years[i]] == AbsentRank {
				break
			}
			length++
		}
		if length >= minConsecutive {
			out = append(out, Streak{
				Row:             row,
				StreakLength:    length,
				StreakStartYear: p.Years[len(p.Years)-length],
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StreakLength != out[j].StreakLength {
			return out[i].StreakLength > out[j].StreakLength
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// OneTimer is a track that charted in exactly one year.
type OneTimer struct {
	Row
	AppearanceYear int
}

// OneTimers lists one-off discoveries that never reappeared, most
// recent appearance first.
func OneTimers(p *Pivot) []OneTimer {
	var out []OneTimer
	for _, row := range p.Rows {
		if row.ListAppearances != 1 {
			continue
		}
		for _, year := range p.Years {
			if row.Ranks[year] != AbsentRank {
				out = append(out, OneTimer{Row: row, AppearanceYear: year})
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AppearanceYear != out[j].AppearanceYear {
			return out[i].AppearanceYear > out[j].AppearanceYear
		}
		return out[i].Ranks[out[i].AppearanceYear] < out[j].Ranks[out[j].AppearanceYear]
	})
	return out
}
