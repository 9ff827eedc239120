// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVec3(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float64
		want [3]float64
	}{
		{"negates x only", [3]float64{1, 2, 3}, [3]float64{-1, 2, 3}},
		{"negative x", [3]float64{-0.5, -2, 7.25}, [3]float64{0.5, -2, 7.25}},
		{"origin", [3]float64{0, 0, 0}, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapVec3(tt.in)
			assert.Equal(t, tt.want, got)

			// Negating the first component of the result recovers the input.
			got[0] = -got[0]
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestMapQuat(t *testing.T) {
	tests := []struct {
		name string
		in   [4]float64
		want [4]float64
	}{
		{"negates y and z", [4]float64{0.1, 0.2, 0.3, 0.9}, [4]float64{0.1, -0.2, -0.3, 0.9}},
		{"identity rotation", [4]float64{0, 0, 0, 1}, [4]float64{0, 0, 0, 1}},
		{"mixed signs", [4]float64{-0.5, -0.5, 0.5, -0.5}, [4]float64{-0.5, 0.5, -0.5, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapQuat(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, MapQuat(got), "MapQuat must be its own inverse")
		})
	}
}
