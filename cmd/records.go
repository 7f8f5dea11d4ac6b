package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/dataset"
	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
	"github.com/yatharthsood00/spotify-wrapped-insights/internal/store"
)

// loadRecords reads track records from the CSV named by --input, or from
// the SQLite database populated by a previous import.
func loadRecords() ([]insights.Record, error) {
	if input := viper.GetString("input"); input != "" {
		return dataset.NewLoader().Load(input)
	}

	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	has, err := db.HasTracks()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("No imported tracks - run import first, or pass --input.")
	}

	return db.ReadTracks()
}

func buildPivot() (*insights.Pivot, error) {
	records, err := loadRecords()
	if err != nil {
		return nil, err
	}
	return insights.BuildPivot(records), nil
}
