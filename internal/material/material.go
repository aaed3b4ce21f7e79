// Package material describes how a stroke surface is shaded.
//
// A Material is an opaque handle as far as mesh building is concerned; only
// the renderer looks inside it.
package material

import "fmt"

// BuiltinRainbow names the procedural rainbow texture generated at runtime.
const BuiltinRainbow = "builtin:rainbow"

// Standard colours (linear RGBA).
var (
	White = [4]float32{1, 1, 1, 1}
	Red   = [4]float32{0.9, 0.1, 0.1, 1}
	Green = [4]float32{0.1, 0.75, 0.2, 1}
	Blue  = [4]float32{0.1, 0.3, 0.9, 1}
	Black = [4]float32{0.05, 0.05, 0.05, 1}
)

// Material is a named surface description shared by any number of strokes.
type Material struct {
	Name  string
	Color [4]float32 // Base colour; multiplies the texture when one is set

	// Texture is a file path or BuiltinRainbow. Empty means a solid colour.
	Texture string
}

// Solid returns an untextured material.
func Solid(name string, rgba [4]float32) *Material {
	return &Material{Name: name, Color: rgba}
}

// Textured returns a material sampling the texture at path, tinted white.
func Textured(name, path string) *Material {
	return &Material{Name: name, Color: White, Texture: path}
}

// IsTextured reports whether the material samples a texture.
func (m *Material) IsTextured() bool {
	return m.Texture != ""
}

func (m *Material) String() string {
	if m.IsTextured() {
		return fmt.Sprintf("%s(texture=%s)", m.Name, m.Texture)
	}
	return fmt.Sprintf("%s(rgba=%.2f,%.2f,%.2f,%.2f)", m.Name, m.Color[0], m.Color[1], m.Color[2], m.Color[3])
}
