// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/partsbundle/internal/gltf"
	"github.com/pdiddy/partsbundle/internal/texture"
	"github.com/pdiddy/partsbundle/pkg/types"
)

var texturesCmd = &cobra.Command{
	Use:   "textures <scene.gltf>",
	Short: "Stage the images a scene document references",
	Long: `Textures gathers the document's image references, copies web-native
formats as-is, re-encodes everything else to WebP or PNG, and writes the
results into the output directory, deduplicating by name and content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath := args[0]
		cfg := pipelineConfig()

		if v, _ := cmd.Flags().GetString("format"); v != "" {
			cfg.Textures.Format = types.TextureFormat(v)
		}
		outDir, _ := cmd.Flags().GetString("out")

		doc, err := gltf.Load(scenePath)
		if err != nil {
			return err
		}

		refs := texture.Gather(doc, filepath.Dir(scenePath))
		res, err := texture.Stage(refs, outDir, cfg.Textures, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Printf("Staged %d texture(s) to %s (%d skipped, %d failed)\n",
			res.Staged, outDir, res.Skipped, res.Failed)
		return nil
	},
}

func init() {
	texturesCmd.Flags().String("out", "3dModels", "output directory for staged textures")
	texturesCmd.Flags().String("format", "", "re-encode target for non-web formats: webp or png (both lossless)")

	rootCmd.AddCommand(texturesCmd)
}
