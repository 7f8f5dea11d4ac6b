/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

var topArtistsMinTracks int

var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Shows artists with multiple tracks across all playlists",
	Long: `Counts how many distinct tracks each credited artist placed on any
yearly list. Joint credits count for every listed artist.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)
	topArtistsCmd.Flags().IntVarP(&topArtistsMinTracks, "min", "m", 2, "Minimum track count for inclusion")
}

func printTopArtists(out io.Writer) error {
	p, err := buildPivot()
	if err != nil {
		return err
	}

	stats := insights.MostPopularArtists(p, topArtistsMinTracks)

	a := Analysis{
		results: [][]string{{"Artist", "Tracks", "Appearances", "Avg Score"}},
	}
	for _, s := range stats {
		a.results = append(a.results, []string{
			s.Artist,
			fmt.Sprint(s.TrackCount),
			fmt.Sprint(s.TotalAppearances),
			fmt.Sprintf("%.1f", s.AvgScore),
		})
	}
	a.summary = fmt.Sprintf("Found %d artists with at least %d tracks", len(stats), topArtistsMinTracks)

	fmt.Fprint(out, a)
	return nil
}
