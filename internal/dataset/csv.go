package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

// Loader reads the raw tracklist CSV deposited by the playlist fetch
// step. Columns: year, index, name, artists, id, link. Malformed rows
// are logged and skipped rather than failing the whole load.
type Loader struct {
	logger *logrus.Logger
}

func NewLoader() *Loader {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Loader{logger: logger}
}

// SetOutput redirects the loader's log output, mainly for tests.
func (l *Loader) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Loader) Load(path string) ([]insights.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return l.Read(f)
}

func (l *Loader) Read(r io.Reader) ([]insights.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := columnIndex(rows[0])
	for _, name := range []string{"year", "index", "name", "artists"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("input is missing the %q column", name)
		}
	}

	var records []insights.Record
	for i, row := range rows[1:] {
		rec, err := parseRow(row, col)
		if err != nil {
			l.logger.WithFields(logrus.Fields{
				"line":  i + 2,
				"error": err,
			}).Warn("Skipping malformed row")
			continue
		}
		records = append(records, rec)
	}

	l.logger.WithField("records", len(records)).Info("Loaded tracklist")
	return records, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func parseRow(row []string, col map[string]int) (insights.Record, error) {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	year, err := strconv.Atoi(field("year"))
	if err != nil {
		return insights.Record{}, fmt.Errorf("bad year %q", field("year"))
	}
	rank, err := strconv.Atoi(field("index"))
	if err != nil || rank < 1 {
		return insights.Record{}, fmt.Errorf("bad rank %q", field("index"))
	}
	title := field("name")
	if title == "" {
		return insights.Record{}, fmt.Errorf("empty track name")
	}
	artists := ParseArtists(field("artists"))
	if len(artists) == 0 {
		return insights.Record{}, fmt.Errorf("empty artists")
	}

	return insights.Record{
		Year:      year,
		Rank:      rank,
		Title:     title,
		Artists:   artists,
		SpotifyID: field("id"),
		Link:      field("link"),
	}, nil
}

// ParseArtists decodes the artists column. The fetch layer serializes
// multi-artist credits in Python list notation, e.g. ['Artist A',
// "Artist B's Band"]; a plain comma-joined value is accepted as a
// fallback.
func ParseArtists(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseBracketedList(s[1 : len(s)-1])
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBracketedList(s string) []string {
	var (
		out     []string
		current strings.Builder
		quote   rune
		escaped bool
	)
	flush := func() {
		if v := strings.TrimSpace(current.String()); v != "" {
			out = append(out, v)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		case unicode.IsSpace(r):
			// Leading whitespace between items is separator noise.
			if current.Len() > 0 {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return out
}
