package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var lookupArtist string
var lookupTitle string
var lookupYear int

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Queries the pivot table by artist, title, or year",
	Long: `Generic replacement for one-off exploratory filters: --artist matches a
credited artist exactly (case-insensitive), --title matches a title
substring, and --year prints that year's list in rank order.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printLookup(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupArtist, "artist", "", "Artist name to match")
	lookupCmd.Flags().StringVar(&lookupTitle, "title", "", "Title substring to match")
	lookupCmd.Flags().IntVar(&lookupYear, "year", 0, "Year list to print")
}

func printLookup(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	switch {
	case lookupArtist != "":
		rows := insights.ByArtist(p, lookupArtist)
		fmt.Fprint(out, rowTable(p, rows, fmt.Sprintf("Found %d tracks crediting %q", len(rows), lookupArtist)))

	case lookupTitle != "":
		rows := insights.ByTitle(p, lookupTitle)
		fmt.Fprint(out, rowTable(p, rows, fmt.Sprintf("Found %d tracks matching %q", len(rows), lookupTitle)))

	case lookupYear != 0:
		list := insights.YearList(p, lookupYear)
		a := Analysis{
			results: [][]string{{"Rank", "Name", "Artists", "Appearances"}},
		}
		for _, e := range list {
			a.results = append(a.results, []string{
				fmt.Sprint(e.Rank),
				e.Title,
				formatArtists(e.Artists),
				fmt.Sprint(e.ListAppearances),
			})
		}
		a.summary = fmt.Sprintf("%d tracks on the %d list", len(list), lookupYear)
		fmt.Fprint(out, a)

	default:
		return fmt.Errorf("Nothing to look up - pass --artist, --title, or --year.")
	}

	return nil
}
