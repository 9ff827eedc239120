// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/partsbundle/internal/manifest"
	"github.com/pdiddy/partsbundle/pkg/types"
)

// fakeRecorder captures catalog records for assertions.
type fakeRecorder struct {
	runs []types.Run
	err  error
}

func (f *fakeRecorder) Record(run types.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

// writeScene writes a one-animation document, its buffer, and one referenced
// texture into dir, returning the document path. withBuffer false omits the
// companion file so waits time out.
func writeScene(t *testing.T, dir string, withBuffer bool) string {
	t.Helper()

	var buf []byte
	appendFloats := func(vals ...float32) (offset, length int) {
		offset = len(buf)
		for _, v := range vals {
			var raw [4]byte
			binary.LittleEndian.PutUint32(raw[:], math.Float32bits(v))
			buf = append(buf, raw[:]...)
		}
		return offset, len(buf) - offset
	}
	timesOff, timesLen := appendFloats(0, 0.5)
	rotOff, rotLen := appendFloats(0, 0, 0, 1, 0, 0.5, 0, 0.5)

	doc := map[string]any{
		"asset":   map[string]any{"version": "2.0"},
		"buffers": []map[string]any{{"uri": "scene.bin", "byteLength": len(buf)}},
		"bufferViews": []map[string]any{
			{"buffer": 0, "byteOffset": timesOff, "byteLength": timesLen},
			{"buffer": 0, "byteOffset": rotOff, "byteLength": rotLen},
		},
		"accessors": []map[string]any{
			{"bufferView": 0, "componentType": 5126, "count": 2, "type": "SCALAR"},
			{"bufferView": 1, "componentType": 5126, "count": 2, "type": "VEC4"},
		},
		"nodes":  []map[string]any{{"name": "Arm"}},
		"images": []map[string]any{{"uri": "skin.png"}},
		"animations": []map[string]any{{
			"name":     "Wave",
			"samplers": []map[string]any{{"input": 0, "output": 1}},
			"channels": []map[string]any{
				{"sampler": 0, "target": map[string]any{"node": 0, "path": "rotation"}},
			},
		}},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	scenePath := filepath.Join(dir, "scene.gltf")
	require.NoError(t, os.WriteFile(scenePath, data, 0o644))

	if withBuffer {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.bin"), buf, 0o644))
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, A: 255})
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skin.png"), pngBuf.Bytes(), 0o644))

	return scenePath
}

func TestRunPipeline(t *testing.T) {
	sceneDir := t.TempDir()
	scenePath := writeScene(t, sceneDir, true)

	modelsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(modelsDir, "Arm.fbx"), []byte("fbx"), 0o644))

	outBase := t.TempDir()
	cfg := types.PipelineConfig{
		Bundle: types.BundleConfig{OutputRoot: outBase, BufferTimeout: time.Second},
		Models: types.ModelsConfig{SourceDir: modelsDir},
	}
	m := &manifest.Manifest{
		Character: "Goblin",
		Parts:     []manifest.Part{{Name: "Arm", InitialPosition: [3]float64{1, 2, 3}}},
	}

	rec := &fakeRecorder{}
	var log bytes.Buffer
	res, err := Run(scenePath, m, cfg, rec, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Animations)
	assert.Equal(t, 1, res.Textures)
	assert.Equal(t, 1, res.Models)

	// Bundle lands in the assets dir under the character's name.
	wantBundle := filepath.Join(outBase, "PartsBundle_Output", "assetsToUpload", "Goblin_Animations.json")
	assert.Equal(t, wantBundle, res.BundlePath)

	data, err := os.ReadFile(wantBundle)
	require.NoError(t, err)
	var bundle struct {
		InitialPositions map[string][3]float64 `json:"initialPositions"`
		NamePrefix       string                `json:"namePrefix"`
		Meta             struct {
			Source string `json:"source"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.Equal(t, [3]float64{1, 2, 3}, bundle.InitialPositions["Arm"])
	assert.Equal(t, "Goblin_", bundle.NamePrefix)
	assert.Equal(t, "scene.gltf", bundle.Meta.Source)

	// Texture and model staged next to each other.
	modelsOut := filepath.Join(outBase, "PartsBundle_Output", "assetsToUpload", "3dModels")
	for _, name := range []string{"skin.png", "Goblin_Arm.fbx"} {
		_, err := os.Stat(filepath.Join(modelsOut, name))
		assert.NoError(t, err, "expected %s staged", name)
	}

	// Instructions reference the bundle filename.
	instr, err := os.ReadFile(filepath.Join(outBase, "PartsBundle_Output", "instructions.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(instr), "Goblin_Animations.json")

	// Run recorded in the catalog.
	require.Len(t, rec.runs, 1)
	assert.Equal(t, "Goblin", rec.runs[0].Character)
	assert.Equal(t, "scene.gltf", rec.runs[0].Source)
	assert.Equal(t, 1, rec.runs[0].Animations)
}

func TestRunBufferTimeoutWritesNothing(t *testing.T) {
	sceneDir := t.TempDir()
	scenePath := writeScene(t, sceneDir, false)

	outBase := t.TempDir()
	cfg := types.PipelineConfig{
		Bundle: types.BundleConfig{
			OutputRoot:         outBase,
			BufferTimeout:      50 * time.Millisecond,
			BufferPollInterval: 5 * time.Millisecond,
		},
	}

	rec := &fakeRecorder{}
	var log bytes.Buffer
	_, err := Run(scenePath, &manifest.Manifest{Character: "Goblin"}, cfg, rec, &log)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTimeout)

	// The abandoned run creates and overwrites nothing.
	_, statErr := os.Stat(filepath.Join(outBase, "PartsBundle_Output"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, rec.runs)
}

func TestRunCatalogDisabled(t *testing.T) {
	sceneDir := t.TempDir()
	scenePath := writeScene(t, sceneDir, true)

	cfg := types.PipelineConfig{
		Bundle:  types.BundleConfig{OutputRoot: t.TempDir(), BufferTimeout: time.Second},
		Catalog: types.CatalogConfig{Disabled: true},
	}

	rec := &fakeRecorder{}
	var log bytes.Buffer
	_, err := Run(scenePath, &manifest.Manifest{Character: "Goblin"}, cfg, rec, &log)
	require.NoError(t, err)
	assert.Empty(t, rec.runs)
}
