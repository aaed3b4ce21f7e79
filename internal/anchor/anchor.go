// Package anchor provides the fixed world pose that drawn strokes are
// attached to.
package anchor

import (
	"fmt"

	"github.com/Faultbox/skydraw/pkg/math"
)

// Anchor is a rigid pose in world space. Stroke points are stored in the
// anchor's local frame so the whole drawing moves with it.
type Anchor struct {
	Position math.Vec3
	Rotation math.Quat
}

// New creates an anchor at position with the given rotation.
func New(position math.Vec3, rotation math.Quat) *Anchor {
	return &Anchor{Position: position, Rotation: rotation.Normalize()}
}

// WorldToLocal converts a world space point into the anchor's frame.
func (a *Anchor) WorldToLocal(p math.Vec3) math.Vec3 {
	return a.Rotation.Conjugate().Rotate(p.Sub(a.Position))
}

// LocalToWorld converts a point in the anchor's frame into world space.
func (a *Anchor) LocalToWorld(p math.Vec3) math.Vec3 {
	return a.Rotation.Rotate(p).Add(a.Position)
}

// ModelMatrix returns the local-to-world transform for rendering.
func (a *Anchor) ModelMatrix() math.Mat4 {
	return math.Translate(a.Position).Mul(a.Rotation.ToMat4())
}

func (a *Anchor) String() string {
	return fmt.Sprintf("anchor(pos=%.3f,%.3f,%.3f rot=%.3f,%.3f,%.3f,%.3f)",
		a.Position.X, a.Position.Y, a.Position.Z,
		a.Rotation.X, a.Rotation.Y, a.Rotation.Z, a.Rotation.W)
}
