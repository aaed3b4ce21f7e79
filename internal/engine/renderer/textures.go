package renderer

import (
	"image"
	"image/color"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/engine/texture"
	"github.com/Faultbox/skydraw/internal/logger"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Procedural rainbow texture size.
const (
	rainbowWidth  = 16
	rainbowHeight = 256
)

// textureCache uploads each material texture once.
type textureCache struct {
	byPath map[string]uint32
	white  uint32
}

func newTextureCache() *textureCache {
	return &textureCache{
		byPath: make(map[string]uint32),
		white:  uploadTexture(texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})),
	}
}

// get returns the texture for m. Solid materials sample a white texel so
// one shader serves both kinds.
func (c *textureCache) get(m *material.Material) uint32 {
	if !m.IsTextured() {
		return c.white
	}
	if id, ok := c.byPath[m.Texture]; ok {
		return id
	}

	id := uploadTexture(loadMaterialImage(m))
	c.byPath[m.Texture] = id
	return id
}

func (c *textureCache) close() {
	for _, id := range c.byPath {
		gl.DeleteTextures(1, &id)
	}
	gl.DeleteTextures(1, &c.white)
	c.byPath = make(map[string]uint32)
}

// loadMaterialImage decodes a material texture. Unreadable files fall back
// to the procedural rainbow.
func loadMaterialImage(m *material.Material) *image.RGBA {
	if m.Texture == material.BuiltinRainbow {
		return texture.Rainbow(rainbowWidth, rainbowHeight)
	}

	img, err := texture.Load(m.Texture)
	if err != nil {
		logger.Warn("texture unavailable, using rainbow",
			zap.String("material", m.Name),
			zap.String("path", m.Texture),
			zap.Error(err),
		)
		return texture.Rainbow(rainbowWidth, rainbowHeight)
	}
	return img
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}
