package hud

import (
	"github.com/Faultbox/skydraw/internal/material"
)

// Palette bar geometry in pixels.
const (
	SwatchSize    = 28
	SwatchSpacing = 6
	BarPadding    = 8
	BarMargin     = 12
)

// rainbowBands stands in for textured materials, which have no single color.
var rainbowBands = []Color{
	{0.9, 0.1, 0.1, 1},
	{0.95, 0.6, 0.1, 1},
	{0.9, 0.9, 0.1, 1},
	{0.1, 0.75, 0.2, 1},
	{0.1, 0.3, 0.9, 1},
	{0.55, 0.2, 0.8, 1},
}

// Swatch is the screen rectangle of one palette entry.
type Swatch struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the swatch.
func (s Swatch) Contains(x, y float32) bool {
	return x >= s.X && x < s.X+s.W && y >= s.Y && y < s.Y+s.H
}

// PaletteLayout places count swatches in a row centered at the bottom of the
// screen. It also returns the bar enclosing them.
func PaletteLayout(count int, screenW, screenH float32) (bar Swatch, swatches []Swatch) {
	if count <= 0 {
		return Swatch{}, nil
	}

	w := float32(count)*SwatchSize + float32(count-1)*SwatchSpacing + 2*BarPadding
	h := float32(SwatchSize + 2*BarPadding)
	bar = Swatch{X: (screenW - w) / 2, Y: screenH - h - BarMargin, W: w, H: h}

	swatches = make([]Swatch, count)
	for i := range swatches {
		swatches[i] = Swatch{
			X: bar.X + BarPadding + float32(i)*(SwatchSize+SwatchSpacing),
			Y: bar.Y + BarPadding,
			W: SwatchSize,
			H: SwatchSize,
		}
	}
	return bar, swatches
}

// PaletteBar adds the palette bar to b with the selected entry outlined.
// It returns the swatch rectangles for hit testing.
func PaletteBar(b *Batch, p *material.Palette, selected int, screenW, screenH float32) []Swatch {
	bar, swatches := PaletteLayout(p.Len(), screenW, screenH)
	if swatches == nil {
		return nil
	}

	b.Panel(bar.X, bar.Y, bar.W, bar.H, ColorPanelBg, ColorPanelBorder)
	for i, s := range swatches {
		m := p.At(i)
		if m.IsTextured() {
			bandW := s.W / float32(len(rainbowBands))
			for k, c := range rainbowBands {
				b.Rect(s.X+float32(k)*bandW, s.Y, bandW, s.H, c)
			}
		} else {
			b.Rect(s.X, s.Y, s.W, s.H, FromRGBA(m.Color))
		}

		if i == selected {
			b.RectOutline(s.X-3, s.Y-3, s.W+6, s.H+6, 2, ColorHighlight)
		} else {
			b.RectOutline(s.X, s.Y, s.W, s.H, 1, ColorPanelBorder.Darken(0.3))
		}
	}
	return swatches
}

// HitSwatch returns the index of the swatch under the point, or -1.
func HitSwatch(swatches []Swatch, x, y float32) int {
	for i, s := range swatches {
		if s.Contains(x, y) {
			return i
		}
	}
	return -1
}
