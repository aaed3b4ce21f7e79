package tube

import (
	"github.com/Faultbox/skydraw/pkg/math"
)

// parallelEpsilon is the cross product length below which the running up
// vector is considered parallel to a segment direction.
const parallelEpsilon = 1e-4

// orientation is carried from one segment to the next while walking the
// polyline.
type orientation struct {
	rotation math.Quat
	up       math.Vec3
	started  bool
}

// next returns the orientation of a segment heading along forward (unit).
// The rotation looks along forward using the previous segment's up axis and
// is negated when it lies in the opposite quaternion hemisphere from the
// previous rotation, so neighbouring rings never flip half a turn.
func (o orientation) next(forward math.Vec3) orientation {
	up := o.up
	if forward.Cross(up).Length() < parallelEpsilon {
		up = fallbackUp(forward)
	}

	rot := math.LookRotation(forward, up)
	if o.started && o.rotation.Dot(rot) < 0 {
		rot = rot.Negate()
	}

	return orientation{
		rotation: rot,
		up:       rot.Rotate(math.Vec3Up).Normalize(),
		started:  true,
	}
}

// fallbackUp picks the world axis least aligned with forward.
func fallbackUp(forward math.Vec3) math.Vec3 {
	axes := [3]math.Vec3{math.Vec3Up, {Z: 1}, math.Vec3Right}
	best := axes[0]
	bestDot := float32(2)
	for _, a := range axes {
		d := forward.Dot(a)
		if d < 0 {
			d = -d
		}
		if d < bestDot {
			best, bestDot = a, d
		}
	}
	return best
}

// SegmentRotations returns one rotation per segment of points. Rotation i
// maps Vec3Forward onto the direction from points[i] to points[i+1]; its up
// axis is inherited from segment i-1 so the frame twists as little as
// possible. Consecutive rotations always have a non-negative dot product.
//
// Consecutive points must not coincide.
func SegmentRotations(points []math.Vec3) []math.Quat {
	if len(points) < 2 {
		return nil
	}

	rotations := make([]math.Quat, 0, len(points)-1)
	acc := orientation{up: math.Vec3Up}
	for i := 0; i+1 < len(points); i++ {
		acc = acc.next(points[i+1].Sub(points[i]).Normalize())
		rotations = append(rotations, acc.rotation)
	}
	return rotations
}

// ringRotation returns the orientation of the ring at point i. End rings use
// their only segment; interior joints blend the two segments meeting there.
func ringRotation(rotations []math.Quat, i int) math.Quat {
	switch {
	case i == 0:
		return rotations[0]
	case i == len(rotations):
		return rotations[i-1]
	default:
		return rotations[i-1].Slerp(rotations[i], 0.5)
	}
}
