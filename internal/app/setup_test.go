package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydraw/internal/config"
	"github.com/Faultbox/skydraw/internal/material"
)

func TestStrokeOptions(t *testing.T) {
	opts := StrokeOptions(config.Default().Drawing)

	assert.Equal(t, float32(0.005), opts.Radius)
	assert.Equal(t, float32(0.005), opts.MinDistance)
	assert.Equal(t, 8, opts.Sides)
	assert.Equal(t, 10, opts.Simplify.Interval)
	assert.Equal(t, float32(0.005), opts.Simplify.Tolerance)
}

func TestBuildPaletteDefault(t *testing.T) {
	p, selected, err := BuildPalette(config.Default().Palette)
	require.NoError(t, err)

	assert.Equal(t, material.DefaultPalette().Names(), p.Names())
	assert.Equal(t, 0, selected)

	rainbow, ok := p.Get("rainbow")
	require.True(t, ok)
	assert.True(t, rainbow.IsTextured())
	assert.Equal(t, material.BuiltinRainbow, rainbow.Texture)

	red, ok := p.Get("red")
	require.True(t, ok)
	assert.False(t, red.IsTextured())
	assert.Equal(t, material.Red, red.Color)
}

func TestBuildPaletteSelectsDefault(t *testing.T) {
	cfg := config.Default().Palette
	cfg.Default = "blue"

	_, selected, err := BuildPalette(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, selected)

	cfg.Default = ""
	_, selected, err = BuildPalette(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, selected)
}

func TestBuildPaletteTextureDefaultsToWhite(t *testing.T) {
	p, _, err := BuildPalette(config.PaletteConfig{
		Materials: []config.MaterialConfig{{Name: "bricks", Texture: "bricks.png"}},
	})
	require.NoError(t, err)

	m := p.At(0)
	require.NotNil(t, m)
	assert.Equal(t, material.White, m.Color)
	assert.Equal(t, "bricks.png", m.Texture)
}

func TestBuildPaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PaletteConfig
		want error
	}{
		{"empty", config.PaletteConfig{}, material.ErrEmptyPalette},
		{"unnamed", config.PaletteConfig{
			Materials: []config.MaterialConfig{{Color: material.Red}},
		}, material.ErrEmptyName},
		{"duplicate", config.PaletteConfig{
			Materials: []config.MaterialConfig{{Name: "a"}, {Name: "a"}},
		}, material.ErrDuplicateMaterial},
		{"unknown default", config.PaletteConfig{
			Materials: []config.MaterialConfig{{Name: "a"}},
			Default:   "b",
		}, config.ErrUnknownMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildPalette(tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
