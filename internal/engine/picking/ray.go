// Package picking converts screen positions into world space rays.
package picking

import (
	"github.com/Faultbox/skydraw/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
// The ray starts on the near plane.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// TransformPoint applies the perspective divide
	nearWorld := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	farWorld := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

// Point returns the point at distance along the ray.
func (r Ray) Point(distance float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(distance))
}

// FromEye returns a ray with the same direction starting at eye. Pointer rays
// start on the near plane; drawing measures depth from the camera itself.
func (r Ray) FromEye(eye math.Vec3) Ray {
	return Ray{Origin: eye, Direction: r.Direction}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	// Ray: P = Origin + t * Direction
	// Plane: Y = planeY
	if absf(r.Direction.Y) < 0.001 {
		return math.Vec3{}, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false // Intersection behind ray origin
	}
	return r.Point(t), true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
