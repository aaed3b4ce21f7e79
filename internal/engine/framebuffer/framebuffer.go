// Package framebuffer provides offscreen render targets.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxSize caps each dimension of a render target.
const MaxSize = 8192

// Target is an offscreen framebuffer with an RGBA color texture and a depth
// renderbuffer.
type Target struct {
	fbo          uint32
	colorTexture uint32
	depthRBO     uint32
	width        int
	height       int
}

// New creates a render target. Dimensions are clamped to 1..MaxSize.
func New(width, height int) (*Target, error) {
	t := &Target{}
	t.width, t.height = ClampSize(width, height)

	gl.GenFramebuffers(1, &t.fbo)
	gl.GenTextures(1, &t.colorTexture)
	gl.GenRenderbuffers(1, &t.depthRBO)
	t.allocate()

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.colorTexture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.depthRBO)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Close()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return t, nil
}

// allocate sizes the attachments to the current dimensions.
func (t *Target) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, t.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.width), int32(t.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(t.width), int32(t.height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Resize reallocates the attachments when the size changed.
func (t *Target) Resize(width, height int) {
	width, height = ClampSize(width, height)
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	t.allocate()
}

// Size returns the target dimensions.
func (t *Target) Size() (width, height int) {
	return t.width, t.height
}

// Bind makes the target the current framebuffer and viewport. The returned
// function restores the previous framebuffer and viewport.
func (t *Target) Bind() (restore func()) {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(t.width), int32(t.height))

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// ReadPixels returns the color attachment as RGBA rows, bottom row first.
func (t *Target) ReadPixels() []byte {
	pixels := make([]byte, t.width*t.height*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(t.width), int32(t.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	return pixels
}

// Close releases all OpenGL resources.
func (t *Target) Close() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.colorTexture != 0 {
		gl.DeleteTextures(1, &t.colorTexture)
		t.colorTexture = 0
	}
	if t.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &t.depthRBO)
		t.depthRBO = 0
	}
}

// ClampSize limits width and height to 1..MaxSize.
func ClampSize(width, height int) (int, int) {
	return clamp(width), clamp(height)
}

// ScaledSize multiplies a size by scale, shrinking both dimensions evenly
// when one would exceed MaxSize. Scales below 1 are treated as 1.
func ScaledSize(width, height int, scale float32) (int, int) {
	if scale < 1 {
		scale = 1
	}
	w := float32(width) * scale
	h := float32(height) * scale
	if m := max(w, h); m > MaxSize {
		w = w * MaxSize / m
		h = h * MaxSize / m
	}
	return ClampSize(int(w), int(h))
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxSize {
		return MaxSize
	}
	return v
}
