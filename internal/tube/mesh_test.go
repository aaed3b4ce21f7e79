package tube

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/pkg/math"
)

const testRadius = 0.005

func vec(a [3]float32) math.Vec3 { return math.Vec3FromArray(a) }

// zigzag returns well separated points that turn in all three axes.
func zigzag(n int) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		a := float64(i) * 0.9
		pts[i] = math.Vec3{
			X: float32(0.05 * gomath.Cos(a)),
			Y: float32(0.03*gomath.Sin(2*a)) + float32(i)*0.01,
			Z: float32(0.05 * gomath.Sin(a)),
		}
	}
	return pts
}

func expectedCounts(points, sides int) (vertices, triangles int) {
	return points*(sides+1) + 2*(sides+2), 2*sides*(points-1) + 2*sides
}

func TestBuildMeshTwoPoints(t *testing.T) {
	mat := material.Solid("white", material.White)
	points := []math.Vec3{{}, {Z: 1}}

	m := BuildMesh(points, BuildOptions{Radius: testRadius, Sides: 8, Material: mat})
	require.NotNil(t, m)

	assert.Len(t, m.Vertices, 38)
	assert.Equal(t, 32, m.TriangleCount())
	assert.Equal(t, 2, m.Rings)
	assert.Equal(t, 8, m.Sides)
	assert.Same(t, mat, m.Material)
}

func TestBuildMeshInsufficientInput(t *testing.T) {
	opts := BuildOptions{Radius: testRadius}

	assert.Nil(t, BuildMesh(nil, opts))
	assert.Nil(t, BuildMesh([]math.Vec3{{X: 1}}, opts))
	assert.Nil(t, BuildMesh(zigzag(3), BuildOptions{}), "zero radius")
	assert.Nil(t, BuildMesh(zigzag(3), BuildOptions{Radius: testRadius, Sides: 2}))
}

func TestBuildMeshCounts(t *testing.T) {
	for _, sides := range []int{3, 6, 8, 16} {
		for _, n := range []int{2, 3, 5, 17, 60} {
			m := BuildMesh(zigzag(n), BuildOptions{Radius: testRadius, Sides: sides})
			require.NotNil(t, m)

			wantVerts, wantTris := expectedCounts(n, sides)
			assert.Len(t, m.Vertices, wantVerts, "sides=%d points=%d", sides, n)
			assert.Equal(t, wantTris, m.TriangleCount(), "sides=%d points=%d", sides, n)

			// The first 2*S*(P-1) triangles form the side wall and only use ring vertices
			sideWall := 2 * sides * (n - 1)
			for _, idx := range m.Indices[:3*sideWall] {
				require.Less(t, int(idx), n*(sides+1))
			}
		}
	}
}

func TestBuildMeshIndicesInBounds(t *testing.T) {
	m := BuildMesh(zigzag(25), BuildOptions{Radius: testRadius})
	require.NotNil(t, m)
	require.Zero(t, len(m.Indices)%3)

	for i, idx := range m.Indices {
		require.Less(t, int(idx), len(m.Vertices), "index %d", i)
	}
}

func TestBuildMeshIdempotent(t *testing.T) {
	pts := zigzag(30)
	opts := BuildOptions{Radius: testRadius}

	a := BuildMesh(pts, opts)
	b := BuildMesh(pts, opts)
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, a.Indices, b.Indices)
	require.Len(t, b.Vertices, len(a.Vertices))
	for i := range a.Vertices {
		assert.InDeltaSlice(t, a.Vertices[i].Position[:], b.Vertices[i].Position[:], 1e-6)
		assert.InDeltaSlice(t, a.Vertices[i].Normal[:], b.Vertices[i].Normal[:], 1e-6)
		assert.InDeltaSlice(t, a.Vertices[i].TexCoord[:], b.Vertices[i].TexCoord[:], 1e-6)
	}
}

func TestBuildMeshDoesNotModifyPoints(t *testing.T) {
	pts := zigzag(12)
	orig := append([]math.Vec3(nil), pts...)
	BuildMesh(pts, BuildOptions{Radius: testRadius})
	assert.Equal(t, orig, pts)
}

func TestBuildMeshRingGeometry(t *testing.T) {
	pts := zigzag(10)
	m := BuildMesh(pts, BuildOptions{Radius: testRadius})
	require.NotNil(t, m)

	ringSize := m.Sides + 1
	for i, p := range pts {
		for k := 0; k < ringSize; k++ {
			v := m.Vertices[i*ringSize+k]
			offset := vec(v.Position).Sub(p)

			assert.InDelta(t, testRadius, offset.Length(), 1e-5, "ring %d vertex %d", i, k)
			n := vec(v.Normal)
			assert.InDelta(t, 1, n.Length(), 1e-4)
			assert.Greater(t, n.Dot(offset), float32(0), "normal must point outward")
		}
		// Seam vertex duplicates the first vertex of the ring
		assert.Equal(t, m.Vertices[i*ringSize].Position, m.Vertices[i*ringSize+m.Sides].Position)
	}
}

func TestBuildMeshTexCoords(t *testing.T) {
	pts := []math.Vec3{{}, {Z: 0.25}, {Z: 0.5}, {Z: 1}}
	m := BuildMesh(pts, BuildOptions{Radius: testRadius, Sides: 4})
	require.NotNil(t, m)

	ringSize := m.Sides + 1
	for k := 0; k < ringSize; k++ {
		assert.InDelta(t, float32(k)/4, m.Vertices[k].TexCoord[0], 1e-6)
		assert.Zero(t, m.Vertices[k].TexCoord[1])

		// Straight tube: V is the arc length along the stroke
		for i, want := range []float32{0, 0.25, 0.5, 1} {
			assert.InDelta(t, want, m.Vertices[i*ringSize+k].TexCoord[1], 1e-4)
		}
	}

	// Caps map the ring onto a disk
	startCap := len(pts) * ringSize
	assert.Equal(t, [2]float32{0.5, 0.5}, m.Vertices[startCap].TexCoord)
	assert.InDeltaSlice(t, []float32{1, 0.5}, m.Vertices[startCap+1].TexCoord[:], 1e-6)
	assert.InDeltaSlice(t, []float32{0.5, 1}, m.Vertices[startCap+2].TexCoord[:], 1e-6)
}

func TestBuildMeshCaps(t *testing.T) {
	pts := []math.Vec3{{}, {X: 0.1}, {X: 0.2, Y: 0.05}}
	m := BuildMesh(pts, BuildOptions{Radius: testRadius})
	require.NotNil(t, m)

	ringSize := m.Sides + 1
	startCap := len(pts) * ringSize
	endCap := startCap + ringSize + 1

	startNormal := pts[0].Sub(pts[1]).Normalize().Array()
	endNormal := pts[2].Sub(pts[1]).Normalize().Array()

	assert.Equal(t, pts[0].Array(), m.Vertices[startCap].Position)
	assert.Equal(t, pts[2].Array(), m.Vertices[endCap].Position)
	for k := 0; k <= ringSize; k++ {
		assert.InDeltaSlice(t, startNormal[:], m.Vertices[startCap+k].Normal[:], 1e-6)
		assert.InDeltaSlice(t, endNormal[:], m.Vertices[endCap+k].Normal[:], 1e-6)
	}
	for k := 0; k < ringSize; k++ {
		assert.Equal(t, m.Vertices[k].Position, m.Vertices[startCap+1+k].Position)
		assert.Equal(t, m.Vertices[2*ringSize+k].Position, m.Vertices[endCap+1+k].Position)
	}
}

// TestBuildMeshWindingFacesOutward checks every triangle's geometric normal
// against the normals of its vertices.
func TestBuildMeshWindingFacesOutward(t *testing.T) {
	for _, pts := range [][]math.Vec3{
		{{}, {Z: 1}},
		{{}, {Y: 1}},
		zigzag(40),
	} {
		m := BuildMesh(pts, BuildOptions{Radius: testRadius})
		require.NotNil(t, m)

		for i := 0; i < len(m.Indices); i += 3 {
			a := m.Vertices[m.Indices[i]]
			b := m.Vertices[m.Indices[i+1]]
			c := m.Vertices[m.Indices[i+2]]

			face := vec(b.Position).Sub(vec(a.Position)).Cross(vec(c.Position).Sub(vec(a.Position)))
			avg := vec(a.Normal).Add(vec(b.Normal)).Add(vec(c.Normal))
			assert.Greater(t, face.Dot(avg), float32(0), "triangle %d faces inward", i/3)
		}
	}
}

func TestBuildMeshBounds(t *testing.T) {
	pts := []math.Vec3{{}, {X: 1}}
	m := BuildMesh(pts, BuildOptions{Radius: 0.1, Sides: 4})
	require.NotNil(t, m)

	assert.InDeltaSlice(t, []float32{0, -0.1, -0.1}, m.Bounds.Min[:], 1e-5)
	assert.InDeltaSlice(t, []float32{1, 0.1, 0.1}, m.Bounds.Max[:], 1e-5)
}

func TestBuildMeshVerticalAndReversingStrokes(t *testing.T) {
	tests := []struct {
		name string
		pts  []math.Vec3
	}{
		{"straight up", []math.Vec3{{}, {Y: 0.1}, {Y: 0.2}}},
		{"straight down", []math.Vec3{{}, {Y: -0.1}}},
		{"turn towards up", []math.Vec3{{}, {Z: 0.1}, {Z: 0.1, Y: 0.1}}},
		{"u-turn", []math.Vec3{{}, {X: 0.1}, {X: 0.1, Z: 0.01}, {Z: 0.01}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMesh(tt.pts, BuildOptions{Radius: testRadius})
			require.NotNil(t, m)
			for _, v := range m.Vertices {
				for _, x := range append(v.Position[:], v.Normal[:]...) {
					require.False(t, gomath.IsNaN(float64(x)))
				}
			}
		})
	}
}

func BenchmarkBuildMesh(b *testing.B) {
	pts := zigzag(200)
	opts := BuildOptions{Radius: testRadius}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BuildMesh(pts, opts)
	}
}
