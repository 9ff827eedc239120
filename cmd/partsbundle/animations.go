// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/partsbundle/internal/anim"
	"github.com/pdiddy/partsbundle/internal/export"
	"github.com/pdiddy/partsbundle/internal/gltf"
	"github.com/pdiddy/partsbundle/internal/manifest"
)

var animationsCmd = &cobra.Command{
	Use:   "animations <scene.gltf> <out.json>",
	Short: "Convert a scene document's animations to the platform JSON bundle",
	Long: `Animations runs only the glTF-to-JSON converter: decode the document's
float accessors, re-key channels by node name, re-map translations to
(-x, y, z) and rotations to (x, -y, -z, w), and write one compact JSON
bundle. Initial positions and bone renames come from the manifest.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath, outPath := args[0], args[1]
		cfg := pipelineConfig()
		if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
			cfg.Bundle.BufferTimeout = v
		}

		var initial map[string][3]float64
		var renames map[string]string
		prefix, _ := cmd.Flags().GetString("prefix")

		if path, _ := cmd.Flags().GetString("manifest"); path != "" {
			m, err := manifest.Read(path)
			if err != nil {
				return err
			}
			initial = m.InitialPositions()
			renames = m.RenameTable()
			if prefix == "" {
				prefix = m.Prefix()
			}
		}

		doc, err := gltf.Load(scenePath)
		if err != nil {
			return err
		}
		paths := doc.BufferPaths(filepath.Dir(scenePath))
		if err := export.WaitForBuffers(paths, cfg.Bundle.BufferTimeout, cfg.Bundle.BufferPollInterval); err != nil {
			return err
		}

		b, err := anim.ConvertFile(scenePath, outPath, initial, prefix, renames)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d animation(s))\n", filepath.Base(outPath), len(b.Animations))
		return nil
	},
}

func init() {
	animationsCmd.Flags().String("manifest", "", "YAML part manifest for initial positions and bone renames")
	animationsCmd.Flags().String("prefix", "", "object name prefix stored in the bundle")
	animationsCmd.Flags().Duration("timeout", 0, "how long to wait for companion buffer files")

	rootCmd.AddCommand(animationsCmd)
}
