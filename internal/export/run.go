// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/partsbundle/internal/anim"
	"github.com/pdiddy/partsbundle/internal/gltf"
	"github.com/pdiddy/partsbundle/internal/manifest"
	"github.com/pdiddy/partsbundle/internal/texture"
	"github.com/pdiddy/partsbundle/pkg/types"
)

// Recorder persists a completed run. *catalog.Store satisfies it; nil skips
// recording.
type Recorder interface {
	Record(run types.Run) (int64, error)
}

// Result summarizes one pipeline run.
type Result struct {
	BundlePath string
	Animations int
	Textures   int
	Models     int
}

// Run executes the whole export pipeline for one scene document: wait for
// the companion buffers, convert animations into the bundle, stage textures
// and per-part models, write instructions, and record the run. The pipeline
// is synchronous and single-pass; a buffer-wait timeout or bundle-write
// failure aborts it with nothing created or overwritten, while per-texture
// and per-model problems are reported to w and skipped.
func Run(scenePath string, m *manifest.Manifest, cfg types.PipelineConfig, rec Recorder, w io.Writer) (Result, error) {
	cfg.Defaults()

	doc, err := gltf.Load(scenePath)
	if err != nil {
		return Result{}, err
	}
	sceneDir := filepath.Dir(scenePath)

	if err := WaitForBuffers(doc.BufferPaths(sceneDir), cfg.Bundle.BufferTimeout, cfg.Bundle.BufferPollInterval); err != nil {
		return Result{}, err
	}

	layout, err := EnsureLayout(cfg.Bundle.OutputRoot)
	if err != nil {
		return Result{}, err
	}
	if err := CleanOutputs(layout); err != nil {
		fmt.Fprintf(w, "cleanup skipped: %v\n", err)
	}

	buffers, err := gltf.LoadBuffers(doc, sceneDir)
	if err != nil {
		return Result{}, fmt.Errorf("loading buffers: %w", err)
	}

	character := manifest.CleanName(m.Character)
	if character == "" {
		character = "Character"
	}

	tracks := anim.Assemble(doc, buffers, m.RenameTable())
	bundle := anim.NewBundle(tracks, m.InitialPositions(), m.Prefix(), filepath.Base(scenePath), time.Now())

	bundleName := character + "_Animations.json"
	bundlePath := filepath.Join(layout.Assets, bundleName)
	if err := anim.WriteBundle(bundle, bundlePath); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "wrote:   %s\n", bundleName)

	texRes, err := texture.Stage(texture.Gather(doc, sceneDir), layout.Models, cfg.Textures, w)
	if err != nil {
		return Result{}, err
	}

	models, err := StageModels(cfg.Models.SourceDir, layout.Models, m.Prefix(), w)
	if err != nil {
		return Result{}, err
	}

	if _, err := WriteInstructions(layout.Root, bundleName); err != nil {
		return Result{}, err
	}

	res := Result{
		BundlePath: bundlePath,
		Animations: len(tracks),
		Textures:   texRes.Staged,
		Models:     models,
	}

	if rec != nil && !cfg.Catalog.Disabled {
		run := types.Run{
			Character:  character,
			Source:     filepath.Base(scenePath),
			BundlePath: bundlePath,
			Animations: res.Animations,
			Textures:   res.Textures,
			Models:     res.Models,
			CreatedAt:  time.Now(),
		}
		if _, err := rec.Record(run); err != nil {
			fmt.Fprintf(w, "catalog record failed: %v\n", err)
		}
	}

	fmt.Fprintf(w, "\nExport summary: %d animation(s), %d texture(s), %d model(s)\n",
		res.Animations, res.Textures, res.Models)
	return res, nil
}
