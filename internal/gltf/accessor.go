// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gltf

import (
	"encoding/binary"
	"math"
)

// ReadAccessor decodes accessor index into an ordered sequence of float
// tuples (length 1, 3, or 4 per the accessor type). Only FLOAT components
// and SCALAR/VEC3/VEC4 shapes are decoded; anything else yields an empty
// sequence rather than an error, so that unsupported tracks are skipped
// instead of aborting a whole conversion.
//
// The element byte offset is bufferView.byteOffset + accessor.byteOffset.
// When the buffer view declares a stride different from the natural element
// size, elements are read at offset + i*stride, skipping the interleaved
// padding; otherwise the range is decoded as one packed run. Reads past the
// end of the buffer truncate the result.
func ReadAccessor(doc *Document, buffers [][]byte, index int) [][]float32 {
	out := [][]float32{}
	if index < 0 || index >= len(doc.Accessors) {
		return out
	}
	acc := doc.Accessors[index]
	if acc.ComponentType != ComponentFloat {
		return out
	}
	ncomp, ok := componentCount[acc.Type]
	if !ok {
		return out
	}
	if acc.BufferView == nil || *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return out
	}
	bv := doc.BufferViews[*acc.BufferView]
	if bv.Buffer < 0 || bv.Buffer >= len(buffers) {
		return out
	}
	buf := buffers[bv.Buffer]

	offset := bv.ByteOffset + acc.ByteOffset
	elemSize := 4 * ncomp

	stride := bv.ByteStride
	if stride == 0 || stride == elemSize {
		stride = elemSize
	}

	for i := 0; i < acc.Count; i++ {
		at := offset + i*stride
		if at+elemSize > len(buf) {
			break
		}
		elem := make([]float32, ncomp)
		for c := 0; c < ncomp; c++ {
			bits := binary.LittleEndian.Uint32(buf[at+4*c:])
			elem[c] = math.Float32frombits(bits)
		}
		out = append(out, elem)
	}
	return out
}
