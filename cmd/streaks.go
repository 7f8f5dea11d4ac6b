package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var streaksMin int

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Shows tracks on a consecutive-year run ending with the latest list",
	Run: func(cmd *cobra.Command, args []string) {
		err := printStreaks(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
	streaksCmd.Flags().IntVarP(&streaksMin, "min", "m", 3, "Minimum consecutive years")
}

func printStreaks(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	streaks := insights.ActiveStreaks(p, streaksMin)

	a := Analysis{
		results: [][]string{{"Name", "Artists", "Streak", "Since"}},
	}
	for _, s := range streaks {
		a.results = append(a.results, []string{
			s.Title,
			formatArtists(s.Artists),
			fmt.Sprint(s.StreakLength),
			fmt.Sprint(s.StreakStartYear),
		})
	}
	a.summary = fmt.Sprintf("Found %d active streaks of %d+ years", len(streaks), streaksMin)

	fmt.Fprint(out, a)
	return nil
}
