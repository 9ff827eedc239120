// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/partsbundle/internal/gltf"
)

// generatedFmt is ISO-8601 to second precision, matching what the runtime's
// import tooling displays.
const generatedFmt = "2006-01-02T15:04:05"

// Meta records where and when a bundle was generated.
type Meta struct {
	Source    string `json:"source"`
	Generated string `json:"generated"`
}

// Bundle is the single JSON document the platform runtime consumes. Field
// names and nesting are a binding contract; initial positions arrive already
// expressed in platform coordinates and pass through unchanged.
type Bundle struct {
	Animations       map[string]Track      `json:"animations"`
	InitialPositions map[string][3]float64 `json:"initialPositions"`
	NamePrefix       string                `json:"namePrefix"`
	Meta             Meta                  `json:"meta"`
}

// NewBundle assembles the output document. source should be the input
// document's base filename; now stamps meta.generated.
func NewBundle(tracks map[string]Track, initial map[string][3]float64, prefix, source string, now time.Time) Bundle {
	if tracks == nil {
		tracks = map[string]Track{}
	}
	if initial == nil {
		initial = map[string][3]float64{}
	}
	return Bundle{
		Animations:       tracks,
		InitialPositions: initial,
		NamePrefix:       prefix,
		Meta: Meta{
			Source:    source,
			Generated: now.Format(generatedFmt),
		},
	}
}

// WriteBundle serializes the bundle compactly (no extraneous whitespace,
// strict UTF-8) to path. The write goes through a temp file in the target
// directory and renames into place, so a failure never leaves a truncated
// bundle behind; a failed write is total and the caller retries from scratch.
func WriteBundle(b Bundle, path string) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bundle-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// CreateTemp opens 0600; the bundle is a shipped artifact, not a secret.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing bundle: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing bundle: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing bundle: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing bundle: %w", err)
	}
	return nil
}

// ConvertFile runs the whole converter over one document: load, decode
// buffers, assemble, serialize to outPath. Buffers are owned by this call
// and released on return. It does not wait for companion files to appear;
// callers that race an asynchronous exporter poll first (see the export
// package).
func ConvertFile(gltfPath, outPath string, initial map[string][3]float64, prefix string, renames map[string]string) (Bundle, error) {
	doc, err := gltf.Load(gltfPath)
	if err != nil {
		return Bundle{}, err
	}
	buffers, err := gltf.LoadBuffers(doc, filepath.Dir(gltfPath))
	if err != nil {
		return Bundle{}, fmt.Errorf("loading buffers: %w", err)
	}

	tracks := Assemble(doc, buffers, renames)
	b := NewBundle(tracks, initial, prefix, filepath.Base(gltfPath), time.Now())
	if err := WriteBundle(b, outPath); err != nil {
		return Bundle{}, err
	}
	return b, nil
}
