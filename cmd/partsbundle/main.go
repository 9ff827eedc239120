// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the partsbundle CLI. It turns a glTF
// exporter's on-disk output into the upload bundle a worlds platform
// consumes: a per-character animation JSON, staged per-part models and
// textures, and upload instructions.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/partsbundle/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the partsbundle CLI.
var rootCmd = &cobra.Command{
	Use:   "partsbundle",
	Short: "Build worlds-platform upload bundles from exported character parts",
	Long: `partsbundle converts the output of a glTF character export into the files a
web-based worlds platform imports: one compact animation JSON per character,
per-part model files, and web-ready textures, all laid out in an upload
folder with instructions.

Each stage is a subcommand: bundle runs the whole pipeline, animations runs
only the glTF-to-JSON converter, textures stages images, inspect summarizes
a scene document, and catalog lists past export runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./partsbundle.yaml or ~/.config/partsbundle/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("partsbundle")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "partsbundle"))
		}
	}

	viper.SetEnvPrefix("PARTSBUNDLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig builds the stage configuration from the loaded config file
// and environment, with defaults filled in. Command flags override
// individual fields afterwards.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	cfg.Bundle.OutputRoot = viper.GetString("bundle.output_root")
	cfg.Bundle.BufferTimeout = viper.GetDuration("bundle.buffer_timeout")
	cfg.Bundle.BufferPollInterval = viper.GetDuration("bundle.buffer_poll_interval")
	cfg.Textures.Format = types.TextureFormat(viper.GetString("textures.format"))
	cfg.Models.SourceDir = viper.GetString("models.source_dir")
	cfg.Catalog.Disabled = viper.GetBool("catalog.disabled")
	cfg.Catalog.MaxResults = viper.GetInt("catalog.max_results")
	cfg.Defaults()
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
