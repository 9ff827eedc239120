// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads and writes the YAML part manifest that describes a
// character export: the character name, its mesh parts with their platform
// placements, and the bone-to-part rename table applied during assembly.
package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Part describes one exported mesh part.
type Part struct {
	// Name is the part (and platform object) name.
	Name string `yaml:"name"`

	// Model is an optional path to the part's exported model file,
	// relative to the models source directory.
	Model string `yaml:"model,omitempty"`

	// InitialPosition is the part's placement, already expressed in
	// platform coordinates.
	InitialPosition [3]float64 `yaml:"initial_position"`
}

// Rename maps a skeleton bone name to the part name the runtime expects.
type Rename struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Manifest is the on-disk description of a character export.
type Manifest struct {
	// Character is the character name; it seeds output filenames and the
	// default name prefix.
	Character string `yaml:"character"`

	// NamePrefix overrides the default "<Character>_" prefix when set.
	NamePrefix string `yaml:"name_prefix,omitempty"`

	// Parts lists the character's mesh parts.
	Parts []Part `yaml:"parts,omitempty"`

	// BoneRenames re-keys animation tracks from bone names to part names.
	BoneRenames []Rename `yaml:"bone_renames,omitempty"`
}

// Read loads a manifest from a YAML file.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Write saves the manifest as YAML.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Prefix returns the filename/object-name prefix: the explicit override if
// set, else the cleaned character name followed by an underscore.
func (m *Manifest) Prefix() string {
	if m.NamePrefix != "" {
		return m.NamePrefix
	}
	name := CleanName(m.Character)
	if name == "" {
		name = "Character"
	}
	return name + "_"
}

// InitialPositions builds the bundle's initial-position table from the part
// list. Positions pass through as given; any coordinate conversion happened
// before the manifest was written.
func (m *Manifest) InitialPositions() map[string][3]float64 {
	out := make(map[string][3]float64, len(m.Parts))
	for _, p := range m.Parts {
		if p.Name == "" {
			continue
		}
		out[p.Name] = p.InitialPosition
	}
	return out
}

// RenameTable flattens the bone renames into the lookup the assembler uses.
func (m *Manifest) RenameTable() map[string]string {
	if len(m.BoneRenames) == 0 {
		return nil
	}
	out := make(map[string]string, len(m.BoneRenames))
	for _, r := range m.BoneRenames {
		if r.From == "" || r.To == "" {
			continue
		}
		out[r.From] = r.To
	}
	return out
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

// CleanName collapses any run of characters outside [A-Za-z0-9_-] into a
// single underscore and trims leading/trailing underscores.
func CleanName(s string) string {
	return strings.Trim(unsafeName.ReplaceAllString(s, "_"), "_")
}
