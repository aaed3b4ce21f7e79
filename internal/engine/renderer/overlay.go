package renderer

import (
	"fmt"
	"unsafe"

	"github.com/Faultbox/skydraw/internal/engine/hud"
	"github.com/Faultbox/skydraw/internal/engine/shader"
	"github.com/Faultbox/skydraw/internal/engine/shader/shaders"
	"github.com/Faultbox/skydraw/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// OverlayRenderer draws hud batches on top of the scene.
type OverlayRenderer struct {
	program  *shader.Program
	vao, vbo uint32
	capacity int // In floats
}

// NewOverlayRenderer compiles the overlay shader and allocates a stream
// buffer.
func NewOverlayRenderer() (*OverlayRenderer, error) {
	program, err := shader.NewProgram(shaders.HUDVertexShader, shaders.HUDFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("hud shader: %w", err)
	}

	o := &OverlayRenderer{program: program}
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	stride := int32(hud.FloatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	return o, nil
}

// Draw renders b over a viewport of width x height pixels with blending on
// and depth testing off. GL state is restored afterwards.
func (o *OverlayRenderer) Draw(b *hud.Batch, width, height int) {
	vertices := b.Vertices()
	if len(vertices) == 0 {
		return
	}

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(vertices) > o.capacity {
		o.capacity = growCap(o.capacity, len(vertices))
		gl.BufferData(gl.ARRAY_BUFFER, o.capacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.Ortho(0, float32(width), float32(height), 0, -1, 1)
	o.program.Use()
	gl.UniformMatrix4fv(o.program.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.DrawArrays(gl.TRIANGLES, 0, int32(b.VertexCount()))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Close frees GPU resources.
func (o *OverlayRenderer) Close() {
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	o.program.Delete()
}
