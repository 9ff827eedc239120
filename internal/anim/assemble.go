// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anim

import (
	"fmt"

	"github.com/pdiddy/partsbundle/internal/gltf"
)

const (
	pathRotation    = "rotation"
	pathTranslation = "translation"
)

// Track holds one animation clip keyed by node name, already in platform
// coordinates.
type Track struct {
	Times     []float64               `json:"times"`
	Rotations map[string][][4]float64 `json:"rotations"`
	Positions map[string][][3]float64 `json:"positions"`
}

// Assemble buckets every animation's channels by target node name and
// property. Unnamed animations become Animation<index>, unnamed nodes
// node_<index>. renames maps node names to their part names and is applied
// after defaulting; nil means no renaming.
//
// Each clip's times array is the longest input array among its channels,
// first seen winning ties. Shorter channels are not resampled onto that
// clock, so their sample counts may be below len(times); the downstream
// runtime treats all channels as co-sampled. Channels without a sampler or
// node, or targeting any property other than rotation/translation, are
// skipped without error.
func Assemble(doc *gltf.Document, buffers [][]byte, renames map[string]string) map[string]Track {
	tracks := make(map[string]Track, len(doc.Animations))

	for ai, a := range doc.Animations {
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("Animation%d", ai)
		}

		track := Track{
			Times:     []float64{},
			Rotations: map[string][][4]float64{},
			Positions: map[string][][3]float64{},
		}

		for _, ch := range a.Channels {
			s, ok := resolveSampler(a, ch)
			if !ok || s.Input == nil {
				continue
			}
			times := gltf.ReadAccessor(doc, buffers, *s.Input)
			if len(times) > len(track.Times) {
				track.Times = flattenScalars(times)
			}
		}

		for _, ch := range a.Channels {
			s, ok := resolveSampler(a, ch)
			if !ok || s.Output == nil {
				continue
			}
			path := ch.Target.Path
			if path != pathRotation && path != pathTranslation {
				continue
			}
			if ch.Target.Node == nil || *ch.Target.Node < 0 || *ch.Target.Node >= len(doc.Nodes) {
				continue
			}

			nodeName := doc.Nodes[*ch.Target.Node].Name
			if nodeName == "" {
				nodeName = fmt.Sprintf("node_%d", *ch.Target.Node)
			}
			if mapped, ok := renames[nodeName]; ok {
				nodeName = mapped
			}

			values := gltf.ReadAccessor(doc, buffers, *s.Output)
			switch path {
			case pathRotation:
				track.Rotations[nodeName] = mapQuats(values)
			case pathTranslation:
				track.Positions[nodeName] = mapVecs(values)
			}
		}

		tracks[name] = track
	}
	return tracks
}

func resolveSampler(a gltf.Animation, ch gltf.Channel) (gltf.AnimSampler, bool) {
	if ch.Sampler == nil || *ch.Sampler < 0 || *ch.Sampler >= len(a.Samplers) {
		return gltf.AnimSampler{}, false
	}
	return a.Samplers[*ch.Sampler], true
}

func flattenScalars(elems [][]float32) []float64 {
	out := make([]float64, 0, len(elems))
	for _, e := range elems {
		if len(e) != 1 {
			continue
		}
		out = append(out, float64(e[0]))
	}
	return out
}

func mapQuats(elems [][]float32) [][4]float64 {
	out := make([][4]float64, 0, len(elems))
	for _, e := range elems {
		if len(e) != 4 {
			continue
		}
		out = append(out, MapQuat([4]float64{
			float64(e[0]), float64(e[1]), float64(e[2]), float64(e[3]),
		}))
	}
	return out
}

func mapVecs(elems [][]float32) [][3]float64 {
	out := make([][3]float64, 0, len(elems))
	for _, e := range elems {
		if len(e) != 3 {
			continue
		}
		out = append(out, MapVec3([3]float64{
			float64(e[0]), float64(e[1]), float64(e[2]),
		}))
	}
	return out
}
