package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/skydraw/internal/anchor"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/tube"
	"github.com/Faultbox/skydraw/pkg/math"
)

type plainFrame struct{}

func (plainFrame) WorldToLocal(p math.Vec3) math.Vec3 { return p }

func TestFrameModel(t *testing.T) {
	a := anchor.New(math.Vec3{X: 1, Y: 2, Z: 3}, math.QuatFromAxisAngle(math.Vec3Up, 0.5))
	assert.Equal(t, a.ModelMatrix(), frameModel(a))
	assert.Equal(t, math.Identity(), frameModel(plainFrame{}))
}

func TestGrowCap(t *testing.T) {
	tests := []struct {
		current, need, want int
	}{
		{0, 1, 64},
		{0, 64, 64},
		{0, 65, 128},
		{64, 200, 256},
		{256, 100, 256},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, growCap(tt.current, tt.need), "growCap(%d, %d)", tt.current, tt.need)
	}
}

func TestLoadMaterialImageFallsBackToRainbow(t *testing.T) {
	missing := material.Textured("missing", "/nonexistent/texture.png")
	rainbow := material.Textured("rainbow", material.BuiltinRainbow)

	a := loadMaterialImage(missing)
	b := loadMaterialImage(rainbow)
	assert.Equal(t, b.Bounds(), a.Bounds())
	assert.Equal(t, b.Pix, a.Pix)
	assert.Equal(t, rainbowHeight, a.Bounds().Dy())
}

func TestReleasedMeshRejectsUpdates(t *testing.T) {
	sm := &strokeMesh{detached: true}
	assert.ErrorIs(t, sm.Update(nil), ErrNilMesh)
	assert.ErrorIs(t, sm.Update(&tube.Mesh{}), ErrDetached)

	sr := &StrokeRenderer{}
	_, err := sr.Publish(nil, plainFrame{})
	assert.ErrorIs(t, err, ErrNilMesh)
}
