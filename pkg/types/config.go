// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TextureFormat selects the encoding used when a gathered image has to be
// re-encoded for upload.
type TextureFormat string

const (
	TextureWebP TextureFormat = "webp"
	TexturePNG  TextureFormat = "png"
)

// BundleConfig holds settings for the animation bundle stage.
type BundleConfig struct {
	// OutputRoot is the base directory under which the output tree
	// (PartsBundle_Output/assetsToUpload/...) is created.
	OutputRoot string `json:"output_root" yaml:"output_root"`

	// BufferTimeout bounds how long the pipeline waits for companion
	// buffer files to appear after an exporter run (default 10s).
	BufferTimeout time.Duration `json:"buffer_timeout" yaml:"buffer_timeout"`

	// BufferPollInterval is the delay between existence checks while
	// waiting for buffer files (default 100ms).
	BufferPollInterval time.Duration `json:"buffer_poll_interval" yaml:"buffer_poll_interval"`
}

// TextureConfig holds settings for the texture staging stage.
type TextureConfig struct {
	// Format is the target encoding for images that are not already
	// web-native: webp or png. Both encoders are lossless.
	Format TextureFormat `json:"format" yaml:"format"`
}

// ModelsConfig holds settings for per-part model staging.
type ModelsConfig struct {
	// SourceDir is the directory holding the exporter's per-part model
	// files. Empty disables model staging.
	SourceDir string `json:"source_dir" yaml:"source_dir"`
}

// CatalogConfig holds settings for the export-run catalog.
type CatalogConfig struct {
	// Disabled skips recording runs in the SQLite catalog.
	Disabled bool `json:"disabled" yaml:"disabled"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the export pipeline.
type PipelineConfig struct {
	Bundle   BundleConfig  `json:"bundle" yaml:"bundle"`
	Textures TextureConfig `json:"textures" yaml:"textures"`
	Models   ModelsConfig  `json:"models" yaml:"models"`
	Catalog  CatalogConfig `json:"catalog" yaml:"catalog"`
}

// Defaults fills unset fields with their documented default values.
func (c *PipelineConfig) Defaults() {
	if c.Bundle.BufferTimeout <= 0 {
		c.Bundle.BufferTimeout = 10 * time.Second
	}
	if c.Bundle.BufferPollInterval <= 0 {
		c.Bundle.BufferPollInterval = 100 * time.Millisecond
	}
	if c.Textures.Format == "" {
		c.Textures.Format = TextureWebP
	}
	if c.Catalog.MaxResults <= 0 {
		c.Catalog.MaxResults = 20
	}
}
