package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

// SaveProcessed writes the pivoted table as CSV: name, artists,
// song_id, id, list_appearances, score, then one column per observed
// year holding the rank (0 when absent).
func SaveProcessed(p *insights.Pivot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteProcessed(p, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func WriteProcessed(p *insights.Pivot, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"name", "artists", "song_id", "id", "list_appearances", "score"}
	for _, year := range p.Years {
		header = append(header, strconv.Itoa(year))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range p.Rows {
		fields := []string{
			row.Title,
			strings.Join(row.Artists, ", "),
			row.SongID,
			row.SpotifyID,
			strconv.Itoa(row.ListAppearances),
			strconv.Itoa(row.Score),
		}
		for _, year := range p.Years {
			fields = append(fields, strconv.Itoa(row.Ranks[year]))
		}
		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("writing row for %q: %w", row.Title, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
