// Package debug provides visual guides and capture utilities.
package debug

import (
	"github.com/Faultbox/skydraw/internal/tube"
	"github.com/Faultbox/skydraw/pkg/math"
)

// LineVertex represents a vertex for guide line rendering.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// Guide colors.
var (
	GridColor   = [3]float32{0.3, 0.32, 0.36}
	AxisXColor  = [3]float32{0.7, 0.25, 0.25}
	AxisZColor  = [3]float32{0.25, 0.35, 0.7}
	CursorColor = [3]float32{1, 0.85, 0.2}
	BoundsColor = [3]float32{0.4, 0.9, 0.5}
)

func lineVertex(p math.Vec3, c [3]float32) LineVertex {
	return LineVertex{p.X, p.Y, p.Z, c[0], c[1], c[2]}
}

// FloorGrid returns line pairs for a square grid on the plane Y=height,
// centered on the origin with cells lines per side of the center. The lines
// through the origin use the axis colors.
func FloorGrid(cells int, spacing, height float32) []LineVertex {
	if cells <= 0 || spacing <= 0 {
		return nil
	}

	extent := float32(cells) * spacing
	vertices := make([]LineVertex, 0, 4*(2*cells+1))

	for i := -cells; i <= cells; i++ {
		offset := float32(i) * spacing

		// Line parallel to Z
		c := GridColor
		if i == 0 {
			c = AxisZColor
		}
		vertices = append(vertices,
			lineVertex(math.Vec3{X: offset, Y: height, Z: -extent}, c),
			lineVertex(math.Vec3{X: offset, Y: height, Z: extent}, c),
		)

		// Line parallel to X
		c = GridColor
		if i == 0 {
			c = AxisXColor
		}
		vertices = append(vertices,
			lineVertex(math.Vec3{X: -extent, Y: height, Z: offset}, c),
			lineVertex(math.Vec3{X: extent, Y: height, Z: offset}, c),
		)
	}

	return vertices
}

// Cursor returns three short axis-aligned line pairs crossing at p.
func Cursor(p math.Vec3, size float32) []LineVertex {
	h := size / 2
	return []LineVertex{
		lineVertex(p.Sub(math.Vec3{X: h}), CursorColor), lineVertex(p.Add(math.Vec3{X: h}), CursorColor),
		lineVertex(p.Sub(math.Vec3{Y: h}), CursorColor), lineVertex(p.Add(math.Vec3{Y: h}), CursorColor),
		lineVertex(p.Sub(math.Vec3{Z: h}), CursorColor), lineVertex(p.Add(math.Vec3{Z: h}), CursorColor),
	}
}

// DropLine returns a line pair from p straight down to floor.
func DropLine(p, floor math.Vec3) []LineVertex {
	c := [3]float32{CursorColor[0] * 0.5, CursorColor[1] * 0.5, CursorColor[2] * 0.5}
	return []LineVertex{lineVertex(p, c), lineVertex(floor, c)}
}

// BoundsWireframe returns the 12 edges of a mesh bounding box, grown by
// padding on every side. Coordinates stay in the mesh's local frame.
func BoundsWireframe(b tube.Bounds, padding float32) []LineVertex {
	lo := math.Vec3FromArray(b.Min).Sub(math.Vec3{X: padding, Y: padding, Z: padding})
	hi := math.Vec3FromArray(b.Max).Add(math.Vec3{X: padding, Y: padding, Z: padding})

	corner := func(x, y, z bool) LineVertex {
		p := lo
		if x {
			p.X = hi.X
		}
		if y {
			p.Y = hi.Y
		}
		if z {
			p.Z = hi.Z
		}
		return lineVertex(p, BoundsColor)
	}

	return []LineVertex{
		// Bottom face
		corner(false, false, false), corner(true, false, false),
		corner(true, false, false), corner(true, false, true),
		corner(true, false, true), corner(false, false, true),
		corner(false, false, true), corner(false, false, false),
		// Top face
		corner(false, true, false), corner(true, true, false),
		corner(true, true, false), corner(true, true, true),
		corner(true, true, true), corner(false, true, true),
		corner(false, true, true), corner(false, true, false),
		// Vertical edges
		corner(false, false, false), corner(false, true, false),
		corner(true, false, false), corner(true, true, false),
		corner(true, false, true), corner(true, true, true),
		corner(false, false, true), corner(false, true, true),
	}
}

// BoundsWireframeVertexCount is the number of vertices for a bounds wireframe (12 edges × 2).
const BoundsWireframeVertexCount = 24
