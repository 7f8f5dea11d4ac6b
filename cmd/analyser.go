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
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

// Analysis is one rendered result: a table plus a one-line summary.
type Analysis struct {
	results [][]string
	summary string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	if len(a.results) > 1 {
		table := tablewriter.NewWriter(out)
		table.Header(a.results[0])
		for _, row := range a.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

func formatRank(rank int) string {
	if rank == insights.AbsentRank {
		return "-"
	}
	return strconv.Itoa(rank)
}

func formatArtists(artists []string) string {
	return strings.Join(artists, ", ")
}

// yearColumns appends one header cell per observed year.
func yearColumns(header []string, p *insights.Pivot) []string {
	for _, year := range p.Years {
		header = append(header, strconv.Itoa(year))
	}
	return header
}

// yearCells appends the row's rank cell for every observed year.
func yearCells(cells []string, row insights.Row, p *insights.Pivot) []string {
	for _, year := range p.Years {
		cells = append(cells, formatRank(row.Ranks[year]))
	}
	return cells
}
