package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints headline statistics for the whole dataset",
	Run: func(cmd *cobra.Command, args []string) {
		err := printSummary(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	s := insights.Summarize(p)

	a := Analysis{
		results: [][]string{
			{"Stat", "Value"},
			{"Unique tracks", fmt.Sprint(s.UniqueSongs)},
			{"Chart entries", fmt.Sprint(s.TotalChartEntries)},
			{"Avg appearances", fmt.Sprintf("%.2f", s.AvgAppearances)},
			{"Years", fmt.Sprintf("%d-%d (%d lists)", s.FirstYear, s.LastYear, s.YearsCount)},
			{"Most consistent artist", s.MostConsistentArtist},
		},
	}
	a.summary = fmt.Sprintf("Summary over %d unique tracks", s.UniqueSongs)

	fmt.Fprint(out, a)
	return nil
}
