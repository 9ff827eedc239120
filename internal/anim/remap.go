// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package anim converts glTF animation data into the platform's animation
// bundle: channels re-keyed by node name, axis conventions re-mapped, and
// the result serialized as a single compact JSON document.
package anim

// MapVec3 converts a translation from the exporter's right-handed convention
// to the platform's: negate X, pass Y and Z through. The sign pattern is a
// wire contract with the downstream runtime; applying the negation twice
// restores the input.
func MapVec3(v [3]float64) [3]float64 {
	return [3]float64{-v[0], v[1], v[2]}
}

// MapQuat converts a rotation quaternion in (x, y, z, w) order: negate Y and
// Z, pass X and W through. Like MapVec3 this is a fixed handedness
// correction, not a general rotation, and is its own inverse.
func MapQuat(q [4]float64) [4]float64 {
	return [4]float64{q[0], -q[1], -q[2], q[3]}
}
