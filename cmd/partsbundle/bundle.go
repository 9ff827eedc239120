// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/partsbundle/internal/catalog"
	"github.com/pdiddy/partsbundle/internal/export"
	"github.com/pdiddy/partsbundle/internal/manifest"
	"github.com/pdiddy/partsbundle/pkg/types"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <scene.gltf>",
	Short: "Run the full export pipeline for a scene document",
	Long: `Bundle waits for the document's companion buffer files, converts its
animations into the platform JSON bundle, stages textures and per-part model
files into the upload folder, writes instructions, and records the run in
the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath := args[0]
		cfg := pipelineConfig()

		if v, _ := cmd.Flags().GetString("out"); v != "" {
			cfg.Bundle.OutputRoot = v
		}
		if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
			cfg.Bundle.BufferTimeout = v
		}
		if v, _ := cmd.Flags().GetString("models-dir"); v != "" {
			cfg.Models.SourceDir = v
		}
		if v, _ := cmd.Flags().GetString("texture-format"); v != "" {
			cfg.Textures.Format = types.TextureFormat(v)
		}
		if v, _ := cmd.Flags().GetBool("no-catalog"); v {
			cfg.Catalog.Disabled = true
		}
		if cfg.Bundle.OutputRoot == "" {
			return fmt.Errorf("no output folder: set --out or bundle.output_root in the config")
		}

		m, err := loadManifest(cmd, scenePath)
		if err != nil {
			return err
		}

		var rec export.Recorder
		if !cfg.Catalog.Disabled {
			root, err := export.RootDir(cfg.Bundle.OutputRoot)
			if err != nil {
				return err
			}
			rec = &lazyRecorder{root: root, cfg: cfg.Catalog}
		}

		res, err := export.Run(scenePath, m, cfg, rec, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Printf("Bundle written to %s\n", res.BundlePath)
		return nil
	},
}

// lazyRecorder opens the catalog store only once there is a run to record,
// so a failed pipeline leaves no database behind.
type lazyRecorder struct {
	root string
	cfg  types.CatalogConfig
}

func (l *lazyRecorder) Record(run types.Run) (int64, error) {
	s, err := catalog.NewStore(l.root, l.cfg)
	if err != nil {
		return 0, err
	}
	defer s.Close()
	return s.Record(run)
}

// loadManifest reads the --manifest file, or synthesizes a minimal manifest
// from --character / the scene filename when none is given.
func loadManifest(cmd *cobra.Command, scenePath string) (*manifest.Manifest, error) {
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		return manifest.Read(path)
	}
	character, _ := cmd.Flags().GetString("character")
	if character == "" {
		base := filepath.Base(scenePath)
		character = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &manifest.Manifest{Character: character}, nil
}

func init() {
	bundleCmd.Flags().String("manifest", "", "YAML part manifest (character, parts, initial positions, bone renames)")
	bundleCmd.Flags().String("character", "", "character name when no manifest is given (default: scene filename)")
	bundleCmd.Flags().String("out", "", "base output folder (PartsBundle_Output is created under it)")
	bundleCmd.Flags().String("models-dir", "", "directory with exported per-part model files to stage")
	bundleCmd.Flags().Duration("timeout", 0, "how long to wait for companion buffer files")
	bundleCmd.Flags().String("texture-format", "", "re-encode target for non-web textures: webp or png")
	bundleCmd.Flags().Bool("no-catalog", false, "skip recording this run in the catalog")

	rootCmd.AddCommand(bundleCmd)
}
