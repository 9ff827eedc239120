// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// modelExts are the per-part model formats staged for upload.
var modelExts = map[string]bool{
	".fbx": true,
	".glb": true,
	".obj": true,
}

// StageModels copies the exporter's per-part model files from srcDir into
// destDir, prefixing and sanitizing their names. Files already carrying the
// prefix keep it. Non-model files are ignored; per-file copy failures are
// reported and counted but do not abort the stage.
func StageModels(srcDir, destDir, prefix string, w io.Writer) (int, error) {
	if srcDir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, fmt.Errorf("reading models directory: %w", err)
	}

	staged := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !modelExts[ext] {
			continue
		}

		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !strings.HasPrefix(stem, prefix) {
			stem = prefix + stem
		}
		name := SafeFilename(stem) + ext

		if err := copyFile(filepath.Join(srcDir, e.Name()), filepath.Join(destDir, name)); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", e.Name(), err)
			continue
		}
		staged++
		fmt.Fprintf(w, "staged:  %s\n", name)
	}
	return staged, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
