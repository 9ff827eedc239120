// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texture

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/pdiddy/partsbundle/pkg/types"
)

// webNative lists extensions the uploader accepts without re-encoding.
var webNative = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Result summarizes a staging run.
type Result struct {
	Staged  int
	Skipped int
	Failed  int
}

// Stage places each gathered image into destDir. Web-native formats are
// written byte-for-byte; everything else is decoded and re-encoded to the
// configured format. Duplicate final names and duplicate content (by SHA-1)
// stage once. Per-image failures are reported to w and counted, not fatal;
// only an unusable destination directory fails the stage.
func Stage(refs []Ref, destDir string, cfg types.TextureConfig, w io.Writer) (Result, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating texture directory: %w", err)
	}

	var res Result
	byName := map[string]bool{}
	byHash := map[string]string{}

	for _, ref := range refs {
		data, err := ref.load()
		if err != nil {
			fmt.Fprintf(w, "failed:  %s%s (%v)\n", ref.Name, ref.Ext, err)
			res.Failed++
			continue
		}

		sum := sha1.Sum(data)
		digest := hex.EncodeToString(sum[:])
		if prev, ok := byHash[digest]; ok {
			fmt.Fprintf(w, "skipped: %s%s (same content as %s)\n", ref.Name, ref.Ext, prev)
			res.Skipped++
			continue
		}

		finalName, out, err := prepare(ref, data, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s%s (%v)\n", ref.Name, ref.Ext, err)
			res.Failed++
			continue
		}
		if byName[finalName] {
			fmt.Fprintf(w, "skipped: %s (name already staged)\n", finalName)
			res.Skipped++
			continue
		}

		if err := os.WriteFile(filepath.Join(destDir, finalName), out, 0o644); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", finalName, err)
			res.Failed++
			continue
		}

		byName[finalName] = true
		byHash[digest] = finalName
		res.Staged++
		fmt.Fprintf(w, "staged:  %s\n", finalName)
	}

	return res, nil
}

func (r Ref) load() ([]byte, error) {
	if r.Data != nil {
		return r.Data, nil
	}
	return os.ReadFile(r.Path)
}

// prepare returns the final filename and bytes to write: a pass-through for
// web-native sources, otherwise a decode + re-encode.
func prepare(ref Ref, data []byte, cfg types.TextureConfig) (string, []byte, error) {
	if webNative[ref.Ext] {
		return ref.Name + ref.Ext, data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("decoding: %w", err)
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case types.TexturePNG:
		if err := png.Encode(&buf, img); err != nil {
			return "", nil, fmt.Errorf("encoding png: %w", err)
		}
		return ref.Name + ".png", buf.Bytes(), nil
	default:
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return "", nil, fmt.Errorf("encoding webp: %w", err)
		}
		return ref.Name + ".webp", buf.Bytes(), nil
	}
}
