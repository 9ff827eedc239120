// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gltf

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load parses a glTF JSON document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return &doc, nil
}

// BufferPaths returns the filesystem paths of all companion buffer files,
// resolved against dir (the document's own directory). Embedded data-URI
// buffers have no path and are omitted.
func (d *Document) BufferPaths(dir string) []string {
	var paths []string
	for _, buf := range d.Buffers {
		if buf.URI == "" || strings.HasPrefix(buf.URI, "data:") {
			continue
		}
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(buf.URI)))
	}
	return paths
}

// LoadBuffers materializes every buffer's bytes, in document order. File
// URIs are read relative to dir; data URIs are base64-decoded in place.
// The returned slices are owned by the caller for the conversion's lifetime.
func LoadBuffers(d *Document, dir string) ([][]byte, error) {
	buffers := make([][]byte, 0, len(d.Buffers))
	for i, buf := range d.Buffers {
		data, err := loadBuffer(buf, dir)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		buffers = append(buffers, data)
	}
	return buffers, nil
}

func loadBuffer(buf Buffer, dir string) ([]byte, error) {
	if strings.HasPrefix(buf.URI, "data:") {
		comma := strings.IndexByte(buf.URI, ',')
		if comma < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		data, err := base64.StdEncoding.DecodeString(buf.URI[comma+1:])
		if err != nil {
			return nil, fmt.Errorf("decoding data URI: %w", err)
		}
		return data, nil
	}
	path := filepath.Join(dir, filepath.FromSlash(buf.URI))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
