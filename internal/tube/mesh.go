package tube

import (
	gomath "math"

	"github.com/Faultbox/skydraw/pkg/math"
)

// BuildMesh creates a tube mesh around the polyline through points.
// Returns nil when there are fewer than two points, the radius is not
// positive, or the cross-section has fewer than three sides.
//
// The side wall has one ring of Sides+1 vertices per point; the last vertex
// of a ring repeats the first so U can wrap from 0 to 1. Each end is closed by
// a flat cap: a centre vertex plus a copy of the end ring carrying the cap
// normal. For P points and S sides the mesh has P*(S+1) + 2*(S+2) vertices and
// 2*S*(P-1) + 2*S triangles.
//
// Consecutive points must not coincide. Joint rings sit halfway between the
// two segment orientations, so at turns sharper than about 90 degrees they
// can cut into the neighbouring wall and a few joint triangles face inward.
func BuildMesh(points []math.Vec3, opts BuildOptions) *Mesh {
	sides := opts.Sides
	if sides == 0 {
		sides = DefaultSides
	}
	if len(points) < 2 || opts.Radius <= 0 || sides < 3 {
		return nil
	}

	ringSize := sides + 1
	circle := unitCircle(sides)
	rotations := SegmentRotations(points)

	m := &Mesh{
		Vertices: make([]Vertex, 0, len(points)*ringSize+2*(sides+2)),
		Indices:  make([]uint32, 0, 3*(2*sides*(len(points)-1)+2*sides)),
		Material: opts.Material,
		Bounds: Bounds{
			Min: [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32},
			Max: [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32},
		},
		Rings: len(points),
		Sides: sides,
	}

	for i, p := range points {
		rot := ringRotation(rotations, i)
		right := rot.Rotate(math.Vec3Right)
		up := rot.Rotate(math.Vec3Up)

		for k, c := range circle {
			offset := right.Scale(c[0]).Add(up.Scale(c[1]))
			pos := p.Add(offset.Scale(opts.Radius))

			// V grows with the distance travelled by this column of the wall
			var v float32
			if i > 0 {
				prev := m.Vertices[(i-1)*ringSize+k]
				v = prev.TexCoord[1] + pos.Distance(math.Vec3FromArray(prev.Position))
			}

			m.Vertices = append(m.Vertices, Vertex{
				Position: pos.Array(),
				Normal:   offset.Normalize().Array(),
				TexCoord: [2]float32{float32(k) / float32(sides), v},
			})
			updateBounds(&m.Bounds, pos)
		}
	}

	addSideWalls(m, len(points), sides)

	last := len(points) - 1
	addCap(m, points[0], points[1], 0, circle, false)
	addCap(m, points[last], points[last-1], last, circle, true)

	return m
}

// unitCircle returns cos/sin pairs for sides+1 evenly spaced angles; the
// last entry closes the circle exactly.
func unitCircle(sides int) [][2]float32 {
	circle := make([][2]float32, sides+1)
	step := 2 * gomath.Pi / float64(sides)
	for k := 0; k < sides; k++ {
		theta := step * float64(k)
		circle[k] = [2]float32{float32(gomath.Cos(theta)), float32(gomath.Sin(theta))}
	}
	circle[sides] = circle[0]
	return circle
}

// addSideWalls connects each ring to the next with two triangles per
// cross-section edge. With right = forward x up the quads wind
// counter-clockwise seen from outside.
func addSideWalls(m *Mesh, rings, sides int) {
	ringSize := uint32(sides + 1)
	for ring := 0; ring < rings-1; ring++ {
		base := uint32(ring) * ringSize
		for side := uint32(0); side < uint32(sides); side++ {
			topLeft := base + side
			topRight := topLeft + 1
			bottomLeft := topLeft + ringSize
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomRight, topRight,
				topLeft, bottomLeft, bottomRight,
			)
		}
	}
}

// addCap closes the tube at center, the point of ring. The cap faces away
// from neighbour. The end cap (reverse) winds opposite to the start cap
// because its normal points along the tube instead of against it.
func addCap(m *Mesh, center, neighbour math.Vec3, ring int, circle [][2]float32, reverse bool) {
	normal := center.Sub(neighbour).Normalize().Array()

	centerIdx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: center.Array(),
		Normal:   normal,
		TexCoord: [2]float32{0.5, 0.5},
	})

	ringStart := ring * len(circle)
	for k, c := range circle {
		m.Vertices = append(m.Vertices, Vertex{
			Position: m.Vertices[ringStart+k].Position,
			Normal:   normal,
			TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
		})

		if k == len(circle)-1 {
			continue
		}
		a := centerIdx + uint32(k) + 1
		b := a + 1
		if reverse {
			a, b = b, a
		}
		m.Indices = append(m.Indices, centerIdx, a, b)
	}
}

// updateBounds expands bounds to include p.
func updateBounds(b *Bounds, p math.Vec3) {
	pos := p.Array()
	for i := 0; i < 3; i++ {
		if pos[i] < b.Min[i] {
			b.Min[i] = pos[i]
		}
		if pos[i] > b.Max[i] {
			b.Max[i] = pos[i]
		}
	}
}
