// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run records one completed export pipeline invocation for the catalog.
type Run struct {
	// ID is assigned by the catalog store on insert.
	ID int64 `json:"id" yaml:"id"`

	// Character is the character name the bundle was built for.
	Character string `json:"character" yaml:"character"`

	// Source is the base filename of the input scene document.
	Source string `json:"source" yaml:"source"`

	// BundlePath is the path of the written animation bundle.
	BundlePath string `json:"bundle_path" yaml:"bundle_path"`

	// Animations is the number of animation clips in the bundle.
	Animations int `json:"animations" yaml:"animations"`

	// Textures is the number of texture files staged.
	Textures int `json:"textures" yaml:"textures"`

	// Models is the number of per-part model files staged.
	Models int `json:"models" yaml:"models"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
