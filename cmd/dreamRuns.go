package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var dreamRunsTop int

var dreamRunsCmd = &cobra.Command{
	Use:   "dream-runs",
	Short: "Finds tracks that peaked high for one year and then vanished",
	Long: `A dream run is a rank inside the top N of some year's list followed by
complete absence in the next observed year. Only the first such year is
reported per track.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDreamRuns(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dreamRunsCmd)
	dreamRunsCmd.Flags().IntVarP(&dreamRunsTop, "top", "t", insights.DefaultDreamRunTop, "Rank cutoff for a dream run")
}

func printDreamRuns(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	runs := insights.DreamRuns(p, dreamRunsTop)

	a := Analysis{
		results: [][]string{{"Name", "Artists", "Dream Year", "Rank", "Appearances"}},
	}
	for _, r := range runs {
		a.results = append(a.results, []string{
			r.Title,
			formatArtists(r.Artists),
			fmt.Sprint(r.DreamYear),
			fmt.Sprint(r.DreamRank),
			fmt.Sprint(r.ListAppearances),
		})
	}
	a.summary = fmt.Sprintf("Found %d dream run tracks (top %d cutoff)", len(runs), dreamRunsTop)

	fmt.Fprint(out, a)
	return nil
}
