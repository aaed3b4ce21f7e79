package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/pkg/math"
)

func newTestSet(t *testing.T) (*Set, *fakeProvider, *fakeSink) {
	t.Helper()
	provider := &fakeProvider{frame: offsetFrame{}, ready: true}
	sink := &fakeSink{}
	set := NewSet(provider, sink, DefaultOptions())
	set.SetMaterial(material.Solid("white", material.White))
	return set, provider, sink
}

// drawLine begins a stroke at start and extends it n times along X.
func drawLine(t *testing.T, set *Set, start math.Vec3, n int) {
	t.Helper()
	require.NoError(t, set.Begin(start))
	for i := 1; i <= n; i++ {
		require.NoError(t, set.Extend(start.Add(math.Vec3{X: float32(i) * 0.01, Y: float32(i%2) * 0.01})))
	}
	set.End()
}

func TestSetBeginRequiresTracking(t *testing.T) {
	provider := &fakeProvider{}
	set := NewSet(provider, &fakeSink{}, DefaultOptions())
	set.SetMaterial(material.Solid("white", material.White))

	assert.ErrorIs(t, set.Begin(math.Vec3{}), ErrNotTracking)
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Frame())

	provider.ready = true
	provider.frame = offsetFrame{}
	require.NoError(t, set.Begin(math.Vec3{}))
	assert.Equal(t, 1, set.Len())
}

func TestSetBeginRequiresMaterial(t *testing.T) {
	set := NewSet(&fakeProvider{frame: offsetFrame{}, ready: true}, &fakeSink{}, DefaultOptions())
	assert.ErrorIs(t, set.Begin(math.Vec3{}), ErrNoMaterial)
	assert.Nil(t, set.Current())
}

func TestSetBeginWithoutSink(t *testing.T) {
	set := NewSet(&fakeProvider{frame: offsetFrame{}, ready: true}, nil, DefaultOptions())
	set.SetMaterial(material.Solid("white", material.White))
	assert.ErrorIs(t, set.Begin(math.Vec3{}), ErrNoSink)
	assert.Equal(t, 0, set.Len())
}

func TestSetFrameSharedByStrokes(t *testing.T) {
	set, provider, sink := newTestSet(t)

	drawLine(t, set, math.Vec3{}, 5)
	provider.frame = offsetFrame{origin: math.Vec3{X: 1}}
	drawLine(t, set, math.Vec3{Y: 1}, 5)

	assert.Equal(t, 1, provider.calls, "frame is requested once")
	require.Len(t, sink.frames, 2)
	assert.Equal(t, sink.frames[0], sink.frames[1])
	assert.Equal(t, offsetFrame{}, set.Frame())
}

func TestSetExtendWithoutStroke(t *testing.T) {
	set, _, sink := newTestSet(t)

	require.NoError(t, set.Extend(math.Vec3{X: 1}))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, sink.published)
}

func TestSetEndStopsExtending(t *testing.T) {
	set, _, _ := newTestSet(t)

	drawLine(t, set, math.Vec3{}, 3)
	assert.Nil(t, set.Current())

	require.NoError(t, set.Extend(math.Vec3{X: 5}))
	assert.Equal(t, 4, set.Strokes()[0].NumPoints())
}

func TestSetMaterialAppliesToNewStrokes(t *testing.T) {
	set, _, _ := newTestSet(t)
	red := material.Solid("red", material.Red)

	require.NoError(t, set.Begin(math.Vec3{}))
	set.SetMaterial(red)
	require.NoError(t, set.Extend(math.Vec3{X: 0.1}))
	set.End()
	drawLine(t, set, math.Vec3{Y: 1}, 2)

	strokes := set.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, "white", strokes[0].Material().Name)
	assert.Same(t, red, strokes[1].Material())
	assert.Same(t, red, set.Material())
}

func TestSetBeginEndsActiveStroke(t *testing.T) {
	set, _, _ := newTestSet(t)

	require.NoError(t, set.Begin(math.Vec3{}))
	first := set.Current()
	require.NoError(t, set.Begin(math.Vec3{Y: 1}))

	assert.NotSame(t, first, set.Current())
	assert.Equal(t, 2, set.Len())
}

func TestSetUndo(t *testing.T) {
	set, _, sink := newTestSet(t)

	assert.False(t, set.Undo(), "nothing to undo")

	drawLine(t, set, math.Vec3{}, 4)
	drawLine(t, set, math.Vec3{Y: 1}, 4)
	strokes := set.Strokes()

	assert.True(t, set.Undo())
	assert.Equal(t, 1, set.Len())
	assert.True(t, strokes[1].Cleared())
	assert.False(t, strokes[0].Cleared())
	require.Len(t, sink.detached, 1)
	assert.Equal(t, sink.published[1], sink.detached[0])

	assert.True(t, set.Undo())
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Undo())
}

func TestSetUndoActiveStroke(t *testing.T) {
	set, _, _ := newTestSet(t)

	require.NoError(t, set.Begin(math.Vec3{}))
	require.NoError(t, set.Extend(math.Vec3{X: 0.1}))
	assert.True(t, set.Undo())

	assert.Nil(t, set.Current())
	require.NoError(t, set.Extend(math.Vec3{X: 0.2}), "no stroke to extend")
}

func TestSetClear(t *testing.T) {
	set, _, sink := newTestSet(t)

	drawLine(t, set, math.Vec3{}, 3)
	drawLine(t, set, math.Vec3{Y: 1}, 3)
	require.NoError(t, set.Begin(math.Vec3{Z: 1}))
	strokes := set.Strokes()

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Current())
	for _, s := range strokes {
		assert.True(t, s.Cleared())
	}
	// The third stroke never built a mesh, so only two renderables detach
	assert.Len(t, sink.detached, 2)

	// Drawing continues on the same frame
	require.NoError(t, set.Begin(math.Vec3{}))
	assert.Equal(t, 1, set.Len())
}

func TestSetStrokesReturnsCopy(t *testing.T) {
	set, _, _ := newTestSet(t)
	drawLine(t, set, math.Vec3{}, 2)

	strokes := set.Strokes()
	strokes[0] = nil
	assert.NotNil(t, set.Strokes()[0])
}
