// Package hud builds the 2D screen overlay: solid quads in pixel
// coordinates with the origin at the top-left corner.
package hud

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay theme colors.
var (
	ColorPanelBg     = Color{0.08, 0.08, 0.12, 0.85}
	ColorPanelBorder = Color{0.3, 0.3, 0.4, 1}
	ColorHighlight   = Color{1, 0.85, 0.2, 1}
)

// FromRGBA converts a material color.
func FromRGBA(c [4]float32) Color {
	return Color{c[0], c[1], c[2], c[3]}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// FloatsPerVertex is the vertex layout of a Batch: x, y, r, g, b, a.
const FloatsPerVertex = 6

// Batch collects quads for one overlay draw call.
type Batch struct {
	vertices []float32
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{vertices: make([]float32, 0, 1024)}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}

// Vertices returns the interleaved vertex data.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}

// VertexCount returns the number of vertices, six per quad.
func (b *Batch) VertexCount() int {
	return len(b.vertices) / FloatsPerVertex
}

// Rect adds a filled rectangle.
func (b *Batch) Rect(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	b.vertices = append(b.vertices,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,

		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// RectOutline adds a rectangle border of the given thickness drawn inside
// the rectangle.
func (b *Batch) RectOutline(x, y, w, h, thickness float32, c Color) {
	b.Rect(x, y, w, thickness, c)
	b.Rect(x, y+h-thickness, w, thickness, c)
	b.Rect(x, y+thickness, thickness, h-thickness*2, c)
	b.Rect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// Panel adds a filled rectangle with a one pixel border.
func (b *Batch) Panel(x, y, w, h float32, bg, border Color) {
	b.Rect(x, y, w, h, bg)
	b.RectOutline(x, y, w, h, 1, border)
}
