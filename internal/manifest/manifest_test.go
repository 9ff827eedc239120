// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	m := &Manifest{
		Character: "Goblin King",
		Parts: []Part{
			{Name: "Arm", Model: "Goblin_Arm.fbx", InitialPosition: [3]float64{1, 2, 3}},
			{Name: "Leg", InitialPosition: [3]float64{-0.5, 0, 4}},
		},
		BoneRenames: []Rename{{From: "UpperArm_L", To: "Arm"}},
	}

	path := filepath.Join(t.TempDir(), "goblin.yaml")
	require.NoError(t, m.Write(path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		m    Manifest
		want string
	}{
		{"from character name", Manifest{Character: "Goblin"}, "Goblin_"},
		{"cleans unsafe characters", Manifest{Character: "Goblin King!"}, "Goblin_King_"},
		{"explicit override", Manifest{Character: "Goblin", NamePrefix: "GK_"}, "GK_"},
		{"empty falls back", Manifest{}, "Character_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Prefix())
		})
	}
}

func TestInitialPositions(t *testing.T) {
	m := Manifest{Parts: []Part{
		{Name: "Arm", InitialPosition: [3]float64{1, 2, 3}},
		{Name: "", InitialPosition: [3]float64{9, 9, 9}},
	}}
	got := m.InitialPositions()
	assert.Equal(t, map[string][3]float64{"Arm": {1, 2, 3}}, got)
}

func TestRenameTable(t *testing.T) {
	m := Manifest{BoneRenames: []Rename{
		{From: "UpperArm_L", To: "Arm"},
		{From: "", To: "X"},
		{From: "Y", To: ""},
	}}
	assert.Equal(t, map[string]string{"UpperArm_L": "Arm"}, m.RenameTable())

	var empty Manifest
	assert.Nil(t, empty.RenameTable())
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Goblin", "Goblin"},
		{"Goblin King", "Goblin_King"},
		{"a/b\\c:d", "a_b_c_d"},
		{"__trimmed__", "trimmed"},
		{"héllo wörld", "h_llo_w_rld"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.in), "CleanName(%q)", tt.in)
	}
}
