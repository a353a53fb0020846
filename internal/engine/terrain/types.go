// Package terrain provides the procedural heightfield, height/normal
// sampling, and chunked mesh building for the game world.
package terrain

import "github.com/go-gl/mathgl/mgl64"

// Params holds everything needed to generate a heightfield.
type Params struct {
	Seed           int64
	HalfExtent     float64 // Field covers [-HalfExtent, HalfExtent] on X and Z
	CellSize       float64 // Grid spacing in world units
	HeightScale    float64
	MainScale      float64
	DetailScale    float64
	TertiaryScale  float64
	DetailWeight   float64
	TertiaryWeight float64
	CurveExponent  float64
}

// HeightSample is the terrain surface at one (x, z) query point.
type HeightSample struct {
	Height float64
	Normal mgl64.Vec3 // Unit length, upward component >= 0
}

// Mesh holds chunk mesh data ready for a render consumer.
// Positions are relative to the chunk origin.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Chunk is one loaded terrain chunk at integer chunk coordinates.
type Chunk struct {
	X, Z int
	Mesh *Mesh
}
