// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gltf reads the subset of glTF 2.0 scene documents produced by the
// standard separate-file exporter: the JSON document itself, its companion
// binary buffers, and float accessors for animation data.
package gltf

// ComponentFloat is the glTF componentType code for 32-bit IEEE floats, the
// only component type animation samplers use.
const ComponentFloat = 5126

// componentCount maps an accessor type string to its component count.
// Types outside this map are not decoded.
var componentCount = map[string]int{
	"SCALAR": 1,
	"VEC3":   3,
	"VEC4":   4,
}

// Document is the root of a parsed glTF JSON document. Index references are
// pointers so an absent reference is distinguishable from index 0.
type Document struct {
	Asset       Asset        `json:"asset"`
	Accessors   []Accessor   `json:"accessors,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	Nodes       []Node       `json:"nodes,omitempty"`
	Animations  []Animation  `json:"animations,omitempty"`
	Images      []Image      `json:"images,omitempty"`
}

// Asset holds document metadata.
type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

// Accessor describes how to interpret a byte range of a buffer view as a
// typed array.
type Accessor struct {
	BufferView    *int   `json:"bufferView,omitempty"`
	ByteOffset    int    `json:"byteOffset,omitempty"`
	ComponentType int    `json:"componentType"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
}

// BufferView is a byte range within a buffer, with an optional stride for
// interleaved storage.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset,omitempty"`
	ByteLength int `json:"byteLength"`
	ByteStride int `json:"byteStride,omitempty"`
}

// Buffer references a raw byte payload, either a companion file by relative
// URI or an embedded data URI.
type Buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

// Node is a scene-graph node; only the name matters here, as animation
// tracks are re-keyed by node name.
type Node struct {
	Name string `json:"name,omitempty"`
}

// Animation groups channels and their samplers.
type Animation struct {
	Name     string        `json:"name,omitempty"`
	Channels []Channel     `json:"channels,omitempty"`
	Samplers []AnimSampler `json:"samplers,omitempty"`
}

// Channel binds a sampler to a target node property.
type Channel struct {
	Sampler *int          `json:"sampler,omitempty"`
	Target  ChannelTarget `json:"target"`
}

// ChannelTarget names the node and property a channel animates.
type ChannelTarget struct {
	Node *int   `json:"node,omitempty"`
	Path string `json:"path"`
}

// AnimSampler binds a time (input) accessor to a value (output) accessor.
type AnimSampler struct {
	Input         *int   `json:"input,omitempty"`
	Output        *int   `json:"output,omitempty"`
	Interpolation string `json:"interpolation,omitempty"`
}

// Image references a texture image by URI (file path or data URI).
type Image struct {
	URI      string `json:"uri,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Name     string `json:"name,omitempty"`
}
