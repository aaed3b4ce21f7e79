package texture

import (
	"image"
	"image/color"
	gomath "math"
)

// Rainbow generates a texture whose hue cycles once along V (the stroke
// length) and which darkens slightly towards the U edges so the tube reads
// as round. The texture tiles seamlessly in both directions.
func Rainbow(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		hue := float64(y) / float64(height)
		r, g, b := hsvToRGB(hue, 0.85, 1)
		for x := 0; x < width; x++ {
			// Cosine shading is periodic in U so the seam stays invisible
			shade := 0.85 + 0.15*gomath.Cos(2*gomath.Pi*float64(x)/float64(width))
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(r * shade * 255),
				G: uint8(g * shade * 255),
				B: uint8(b * shade * 255),
				A: 255,
			})
		}
	}
	return img
}

// hsvToRGB converts hue in [0,1), saturation and value to RGB in [0,1].
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h = gomath.Mod(h, 1) * 6
	i := gomath.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
