// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gltf

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndLoadBuffers(t *testing.T) {
	dir := t.TempDir()
	payload := floatBytes(1, 2, 3)

	docJSON := `{
		"asset": {"version": "2.0", "generator": "test"},
		"buffers": [{"uri": "scene.bin", "byteLength": 12}],
		"nodes": [{"name": "Arm"}]
	}`
	gltfPath := filepath.Join(dir, "scene.gltf")
	require.NoError(t, os.WriteFile(gltfPath, []byte(docJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.bin"), payload, 0o644))

	doc, err := Load(gltfPath)
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Asset.Version)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "Arm", doc.Nodes[0].Name)

	paths := doc.BufferPaths(dir)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "scene.bin"), paths[0])

	buffers, err := LoadBuffers(doc, dir)
	require.NoError(t, err)
	require.Len(t, buffers, 1)
	assert.Equal(t, payload, buffers[0])
}

func TestLoadBuffersDataURI(t *testing.T) {
	payload := floatBytes(4, 5)
	doc := &Document{
		Buffers: []Buffer{{
			URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(payload),
			ByteLength: len(payload),
		}},
	}

	// Data URIs have no companion file to wait for.
	assert.Empty(t, doc.BufferPaths(t.TempDir()))

	buffers, err := LoadBuffers(doc, "")
	require.NoError(t, err)
	require.Len(t, buffers, 1)
	assert.Equal(t, payload, buffers[0])
}

func TestLoadBuffersMissingFile(t *testing.T) {
	doc := &Document{Buffers: []Buffer{{URI: "missing.bin", ByteLength: 4}}}
	_, err := LoadBuffers(doc, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer 0")
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.gltf")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
