// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texture collects the images a scene document references and stages
// them next to the exported models, re-encoding anything the platform's
// uploader will not accept as-is.
package texture

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/partsbundle/internal/gltf"
	"github.com/pdiddy/partsbundle/internal/manifest"
)

// Ref is one gathered image reference. File-backed images carry Path;
// embedded data-URI images carry their decoded bytes instead.
type Ref struct {
	Name string // base name without extension, cleaned
	Ext  string // lowercase extension including the dot
	Path string // source path, empty for embedded images
	Data []byte // decoded bytes for embedded images
}

// mimeExt maps embedded-image MIME types to file extensions.
var mimeExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// Gather collects the document's image references, deduplicated by final
// name, with relative URIs resolved against baseDir. Unusable references
// (unknown MIME, undecodable data URI) are dropped silently, matching the
// per-element skip policy elsewhere in the converter.
func Gather(doc *gltf.Document, baseDir string) []Ref {
	var refs []Ref
	seen := map[string]bool{}

	for i, img := range doc.Images {
		ref, ok := gatherOne(img, i, baseDir)
		if !ok {
			continue
		}
		key := ref.Name + ref.Ext
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, ref)
	}
	return refs
}

func gatherOne(img gltf.Image, index int, baseDir string) (Ref, bool) {
	if strings.HasPrefix(img.URI, "data:") {
		comma := strings.IndexByte(img.URI, ',')
		if comma < 0 {
			return Ref{}, false
		}
		data, err := base64.StdEncoding.DecodeString(img.URI[comma+1:])
		if err != nil {
			return Ref{}, false
		}
		mime := img.MimeType
		if mime == "" {
			mime = strings.TrimSuffix(strings.TrimPrefix(img.URI[:comma], "data:"), ";base64")
		}
		ext, ok := mimeExt[mime]
		if !ok {
			return Ref{}, false
		}
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("Image%d", index)
		}
		return Ref{Name: cleanBase(name), Ext: ext, Data: data}, true
	}

	if img.URI == "" {
		return Ref{}, false
	}
	path := filepath.Join(baseDir, filepath.FromSlash(img.URI))
	ext := strings.ToLower(filepath.Ext(path))
	name := img.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Ref{Name: cleanBase(name), Ext: ext, Path: path}, true
}

func cleanBase(s string) string {
	if c := manifest.CleanName(s); c != "" {
		return c
	}
	return "Image"
}
