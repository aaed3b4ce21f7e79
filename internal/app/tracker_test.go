package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydraw/internal/anchor"
	"github.com/Faultbox/skydraw/pkg/math"
)

type fixedPose struct {
	position math.Vec3
	rotation math.Quat
	ok       bool
	calls    int
}

func (p *fixedPose) Pose() (math.Vec3, math.Quat, bool) {
	p.calls++
	return p.position, p.rotation, p.ok
}

func TestTrackerNotReady(t *testing.T) {
	tr := NewTracker(&fixedPose{})

	f, ok := tr.Frame()
	assert.False(t, ok)
	assert.Nil(t, f)
	assert.Nil(t, tr.Anchor())
}

func TestTrackerAnchorsAtFirstPose(t *testing.T) {
	src := &fixedPose{position: math.Vec3{X: 1, Y: 2, Z: 3}, rotation: math.QuatIdentity(), ok: true}
	tr := NewTracker(src)

	f, ok := tr.Frame()
	require.True(t, ok)
	a, isAnchor := f.(*anchor.Anchor)
	require.True(t, isAnchor)
	assert.Equal(t, src.position, a.Position)
	assert.Same(t, a, tr.Anchor())

	// The anchor stays where it was created
	src.position = math.Vec3{X: 9}
	f2, ok := tr.Frame()
	require.True(t, ok)
	assert.Same(t, a, f2)
	assert.Equal(t, 1, src.calls)

	local := f2.WorldToLocal(math.Vec3{X: 1, Y: 2, Z: 4})
	assert.True(t, local.ApproxEqual(math.Vec3{Z: 1}, 1e-6))
}
