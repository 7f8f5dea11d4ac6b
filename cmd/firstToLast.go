package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var firstToLastCmd = &cobra.Command{
	Use:   "first-to-last",
	Short: "Tracks the fate of the first playlist's songs",
	Long: `Partitions the first observed year's tracks into those that never
charted again and those that returned, and among the returners shows
which only lasted one more year and which reached the latest list.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printFirstToLast(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(firstToLastCmd)
}

func printFirstToLast(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	res := insights.CompareFirstToLast(p)

	fmt.Fprintf(out, "## Never returned after %d\n", res.FirstYear)
	fmt.Fprint(out, rowTable(p, res.NeverReturned, fmt.Sprintf("%d tracks charted only in %d", len(res.NeverReturned), res.FirstYear)))

	fmt.Fprintf(out, "\n## Returned in a later year\n")
	fmt.Fprint(out, rowTable(p, res.Persisted, fmt.Sprintf("%d tracks came back at least once", len(res.Persisted))))

	nextYear := res.FirstYear
	if len(p.Years) > 1 {
		nextYear = p.Years[1]
	}

	fmt.Fprintf(out, "\n## Lasted exactly one more year\n")
	shifts := Analysis{
		results: [][]string{{"Name", "Artists", fmt.Sprint(res.FirstYear), fmt.Sprint(nextYear), "Delta"}},
	}
	for _, s := range res.OnlyNextYear {
		shifts.results = append(shifts.results, []string{
			s.Title,
			formatArtists(s.Artists),
			formatRank(s.FromRank),
			formatRank(s.ToRank),
			fmt.Sprintf("%+d", s.Delta),
		})
	}
	shifts.summary = fmt.Sprintf("%d tracks appeared only in the immediately following year", len(res.OnlyNextYear))
	fmt.Fprint(out, shifts)

	fmt.Fprintf(out, "\n## Still on the %d list\n", res.LastYear)
	fmt.Fprint(out, rowTable(p, res.PersistedToLast, fmt.Sprintf("%d of the original tracks reached the final list", len(res.PersistedToLast))))

	return nil
}

func rowTable(p *insights.Pivot, rows []insights.Row, summary string) Analysis {
	a := Analysis{
		results: [][]string{yearColumns([]string{"Name", "Artists"}, p)},
		summary: summary,
	}
	for _, row := range rows {
		a.results = append(a.results, yearCells([]string{row.Title, formatArtists(row.Artists)}, row, p))
	}
	return a
}
