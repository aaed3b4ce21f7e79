package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydraw/internal/material"
)

func TestBatchRect(t *testing.T) {
	b := NewBatch()
	b.Rect(10, 20, 30, 40, Color{1, 0, 0, 1})

	require.Equal(t, 6, b.VertexCount())
	v := b.Vertices()
	assert.Equal(t, []float32{10, 20, 1, 0, 0, 1}, v[:6])
	assert.Equal(t, []float32{40, 60, 1, 0, 0, 1}, v[2*FloatsPerVertex:3*FloatsPerVertex])

	b.Rect(0, 0, 0, 5, ColorHighlight)
	assert.Equal(t, 6, b.VertexCount(), "empty rect skipped")

	b.Reset()
	assert.Zero(t, b.VertexCount())
}

func TestBatchPanel(t *testing.T) {
	b := NewBatch()
	b.Panel(0, 0, 100, 50, ColorPanelBg, ColorPanelBorder)

	// Background plus four border edges
	assert.Equal(t, 5*6, b.VertexCount())
}

func TestDarken(t *testing.T) {
	c := Color{1, 0.5, 0, 0.8}.Darken(0.5)
	assert.Equal(t, Color{0.5, 0.25, 0, 0.8}, c)
}

func TestPaletteLayout(t *testing.T) {
	bar, swatches := PaletteLayout(3, 800, 600)
	require.Len(t, swatches, 3)

	wantW := float32(3*SwatchSize + 2*SwatchSpacing + 2*BarPadding)
	assert.Equal(t, wantW, bar.W)
	assert.Equal(t, (800-wantW)/2, bar.X)
	assert.Equal(t, float32(600-BarMargin), bar.Y+bar.H)

	for i, s := range swatches {
		assert.True(t, bar.Contains(s.X, s.Y))
		assert.True(t, bar.Contains(s.X+s.W-1, s.Y+s.H-1))
		if i > 0 {
			assert.Equal(t, float32(SwatchSize+SwatchSpacing), s.X-swatches[i-1].X)
		}
	}

	_, none := PaletteLayout(0, 800, 600)
	assert.Nil(t, none)
}

func TestPaletteBar(t *testing.T) {
	p := material.DefaultPalette()
	b := NewBatch()

	swatches := PaletteBar(b, p, 1, 1280, 720)
	require.Len(t, swatches, p.Len())

	// The panel and each solid swatch take five quads; the rainbow swatch
	// has six bands and a four quad outline
	wantQuads := 5 + 5*5 + (6 + 4)
	assert.Equal(t, wantQuads*6, b.VertexCount())

	s := swatches[2]
	assert.Equal(t, 2, HitSwatch(swatches, s.X+1, s.Y+1))
	assert.Equal(t, -1, HitSwatch(swatches, 0, 0))
}
