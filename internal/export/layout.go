// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export owns the output tree and the one-shot pipeline that fills
// it: wait for the exporter's companion buffers, convert animations, stage
// textures and per-part models, and write the upload instructions.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	outputDirName = "PartsBundle_Output"
	assetsDirName = "assetsToUpload"
	modelsDirName = "3dModels"
	tempDirName   = "tempFiles"
)

// Layout holds the output tree paths:
//
//	<root>/assetsToUpload/3dModels
//	<root>/tempFiles
type Layout struct {
	Root   string
	Assets string
	Models string
	Temp   string
}

// RootDir returns the output root EnsureLayout would use for base, without
// creating anything.
func RootDir(base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("no output folder selected")
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolving output folder: %w", err)
	}
	if strings.EqualFold(filepath.Base(abs), outputDirName) {
		return abs, nil
	}
	return filepath.Join(abs, outputDirName), nil
}

// EnsureLayout creates the output tree under base. When base itself is
// already named PartsBundle_Output it is reused rather than nested.
func EnsureLayout(base string) (Layout, error) {
	root, err := RootDir(base)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Root:   root,
		Assets: filepath.Join(root, assetsDirName),
		Models: filepath.Join(root, assetsDirName, modelsDirName),
		Temp:   filepath.Join(root, tempDirName),
	}
	if err := os.MkdirAll(l.Models, 0o755); err != nil {
		return Layout{}, fmt.Errorf("creating %s: %w", l.Models, err)
	}
	if err := os.MkdirAll(l.Temp, 0o755); err != nil {
		return Layout{}, fmt.Errorf("creating %s: %w", l.Temp, err)
	}
	return l, nil
}

// strayExts are file types swept from the assets root during cleanup;
// leftovers from older exports that wrote models and textures there.
var strayExts = map[string]bool{
	".fbx": true, ".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
	".tga": true, ".tif": true, ".tiff": true, ".bmp": true, ".gif": true,
}

// CleanOutputs empties tempFiles/ and 3dModels/, and removes stray model and
// texture files from the assets root. Animation bundles (*_animations.json,
// case-insensitive, and the legacy animations.json) and subdirectories are
// preserved.
func CleanOutputs(l Layout) error {
	if err := emptyDir(l.Temp); err != nil {
		return err
	}
	if err := emptyDir(l.Models); err != nil {
		return err
	}

	entries, err := os.ReadDir(l.Assets)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(l.Assets, 0o755)
		}
		return fmt.Errorf("reading %s: %w", l.Assets, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if lower == "animations.json" || strings.HasSuffix(lower, "_animations.json") {
			continue
		}
		if strayExts[filepath.Ext(lower)] {
			os.Remove(filepath.Join(l.Assets, e.Name()))
		}
	}
	return nil
}

// emptyDir deletes everything inside path but keeps the directory itself.
func emptyDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(path, 0o755)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	for _, e := range entries {
		os.RemoveAll(filepath.Join(path, e.Name()))
	}
	return nil
}
