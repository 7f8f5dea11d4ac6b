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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/dataset"
	"github.com/yatharthsood00/spotify-wrapped-insights/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [csv]",
	Short: "Imports a raw tracklist CSV into the local database",
	Long: `Reads the flat CSV deposited by the playlist fetch step and stores its
rows for later analysis. Re-importing overwrites rows with the same year
and rank.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := runImport(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(args []string) error {
	path := viper.GetString("input")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("No CSV given - pass a path or --input.")
	}

	records, err := dataset.NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.ImportTracks(records); err != nil {
		return fmt.Errorf("importing tracks: %w", err)
	}

	total, err := db.CountTracks()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"imported": len(records),
		"total":    total,
	}).Info("Import complete")
	return nil
}
