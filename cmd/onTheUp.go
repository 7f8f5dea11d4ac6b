package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var onTheUpCmd = &cobra.Command{
	Use:   "on-the-up",
	Short: "Finds tracks that climbed ranks or returned after an absence",
	Long: `Among tracks with two or more list appearances, reports the first
year-over-year transition where the rank improved or the track came back
onto the list after dropping off.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printOnTheUp(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(onTheUpCmd)
}

func printOnTheUp(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	recoveries := insights.OnTheUp(p)

	a := Analysis{
		results: [][]string{{"Name", "Artists", "Type", "Year", "From", "To"}},
	}
	for _, r := range recoveries {
		a.results = append(a.results, []string{
			r.Title,
			formatArtists(r.Artists),
			r.Type,
			fmt.Sprint(r.RecoveryYear),
			formatRank(r.PreviousRank),
			formatRank(r.NewRank),
		})
	}
	a.summary = fmt.Sprintf("Found %d tracks on the up", len(recoveries))

	fmt.Fprint(out, a)
	return nil
}
