package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/dataset"
	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var processLimit int
var processOut string

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Builds the deduplicated year-pivot table",
	Long: `Collapses catalog duplicates onto one identity per track, pivots
per-year ranks into a single wide table, and prints the top tracks by
score. With --out, also writes the full table as CSV.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printProcess(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().IntVarP(&processLimit, "limit", "n", 20, "Number of rows to print (0 prints all)")
	processCmd.Flags().StringVar(&processOut, "out", "", "Write the full pivot table to this CSV file")
}

func printProcess(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	if processOut != "" {
		if err := dataset.SaveProcessed(p, processOut); err != nil {
			return err
		}
		log.WithField("path", processOut).Info("Wrote processed table")
	}

	rows := make([]insights.Row, len(p.Rows))
	copy(rows, p.Rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	if processLimit > 0 && len(rows) > processLimit {
		rows = rows[:processLimit]
	}

	a := Analysis{
		results: [][]string{yearColumns([]string{"Name", "Artists", "Appearances", "Score"}, p)},
	}
	for _, row := range rows {
		cells := []string{row.Title, formatArtists(row.Artists), fmt.Sprint(row.ListAppearances), fmt.Sprint(row.Score)}
		a.results = append(a.results, yearCells(cells, row, p))
	}
	a.summary = fmt.Sprintf("%d unique tracks across %d years", len(p.Rows), len(p.Years))

	fmt.Fprint(out, a)
	return nil
}
