package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var oneTimersCmd = &cobra.Command{
	Use:   "one-timers",
	Short: "Lists tracks that charted in exactly one year",
	Run: func(cmd *cobra.Command, args []string) {
		err := printOneTimers(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(oneTimersCmd)
}

func printOneTimers(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	oneTimers := insights.OneTimers(p)

	a := Analysis{
		results: [][]string{{"Name", "Artists", "Year", "Rank"}},
	}
	for _, o := range oneTimers {
		a.results = append(a.results, []string{
			o.Title,
			formatArtists(o.Artists),
			fmt.Sprint(o.AppearanceYear),
			formatRank(o.Ranks[o.AppearanceYear]),
		})
	}
	a.summary = fmt.Sprintf("Found %d one-time appearances", len(oneTimers))

	fmt.Fprint(out, a)
	return nil
}
