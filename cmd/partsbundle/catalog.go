// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/partsbundle/internal/catalog"
	"github.com/pdiddy/partsbundle/internal/export"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List past export runs",
	Long: `Catalog reads the export-run history recorded by the bundle command and
prints the most recent runs, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			cfg.Bundle.OutputRoot = v
		}
		if cfg.Bundle.OutputRoot == "" {
			return fmt.Errorf("no output folder: set --out or bundle.output_root in the config")
		}
		root, err := export.RootDir(cfg.Bundle.OutputRoot)
		if err != nil {
			return err
		}

		store, err := catalog.NewStore(root, cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := store.List(limit)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		if len(runs) == 0 {
			fmt.Println("No export runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%4d  %s  %-16s %s  (%d anim, %d tex, %d model)\n",
				r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Character, r.Source,
				r.Animations, r.Textures, r.Models)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("out", "", "base output folder holding the catalog")
	catalogCmd.Flags().Int("limit", 0, "maximum number of runs to list")
	catalogCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(catalogCmd)
}
