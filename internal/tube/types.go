// Package tube sweeps a polygonal cross-section along a polyline and builds a
// capped, textured tube mesh.
package tube

import (
	"github.com/Faultbox/skydraw/internal/material"
)

// DefaultSides is the number of sides of the tube cross-section.
const DefaultSides = 8

// Vertex represents a tube mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds a complete tube mesh ready for GPU upload.
// A Mesh is never modified after BuildMesh returns it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32 // Triangles, counter-clockwise seen from outside
	Material *material.Material
	Bounds   Bounds

	Rings int // Cross-section rings along the side wall, one per input point
	Sides int // Sides of each ring
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of the tube.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// Radius is the distance from the centre line to each ring vertex.
	Radius float32
	// Sides is the cross-section polygon size. Zero means DefaultSides.
	Sides int
	// Material is attached to the mesh as is; it is not inspected.
	Material *material.Material
}
