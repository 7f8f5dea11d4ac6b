package insights

// AbsentRank marks a year in which a track did not chart. Valid ranks
// start at 1, so 0 never collides with a real rank.
const AbsentRank = 0

// Record is one catalog entry from a single year's wrapped playlist, as
// deposited by the fetch layer. Records are read once and never mutated.
type Record struct {
	Year      int
	Rank      int
	Title     string
	Artists   []string
	SpotifyID string
	Link      string
}

// Row is one track across every observed year. Ranks holds an entry for
// every year the pivot knows about, with AbsentRank filling the years
// the track did not chart. Title, Artists and SpotifyID come from the
// first record seen for the identity.
type Row struct {
	Title           string
	Artists         []string
	SongID          string
	SpotifyID       string
	Ranks           map[int]int
	ListAppearances int
	Score           int
}

// RankIn returns the track's rank in the given year, or AbsentRank.
func (r Row) RankIn(year int) int {
	return r.Ranks[year]
}

// ChartedIn reports whether the track appears in the given year's list.
func (r Row) ChartedIn(year int) bool {
	return r.Ranks[year] != AbsentRank
}

// Pivot is the deduplicated wide table: one Row per distinct song
// identity, in first-seen input order, spanning Years in ascending
// order. A Pivot is built once and treated as read-only by every view.
type Pivot struct {
	Years []int
	Rows  []Row

	byID map[string]int
}

// RowBySongID looks up a row by its identity hash.
func (p *Pivot) RowBySongID(id string) (Row, bool) {
	idx, ok := p.byID[id]
	if !ok {
		return Row{}, false
	}
	return p.Rows[idx], true
}

// FirstYear returns the earliest observed year, or 0 for an empty pivot.
func (p *Pivot) FirstYear() int {
	if len(p.Years) == 0 {
		return 0
	}
	return p.Years[0]
}

// LastYear returns the latest observed year, or 0 for an empty pivot.
func (p *Pivot) LastYear() int {
	if len(p.Years) == 0 {
		return 0
	}
	return p.Years[len(p.Years)-1]
}
