package renderer

import (
	"fmt"
	"unsafe"

	"github.com/Faultbox/skydraw/internal/engine/debug"
	"github.com/Faultbox/skydraw/internal/engine/shader"
	"github.com/Faultbox/skydraw/internal/engine/shader/shaders"
	"github.com/Faultbox/skydraw/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// LineRenderer draws colored line lists streamed from the CPU each frame.
type LineRenderer struct {
	program  *shader.Program
	vao, vbo uint32
	capacity int
}

// NewLineRenderer compiles the line shader and allocates a stream buffer.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	lr := &LineRenderer{program: program}
	gl.GenVertexArrays(1, &lr.vao)
	gl.GenBuffers(1, &lr.vbo)

	gl.BindVertexArray(lr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	stride := int32(unsafe.Sizeof(debug.LineVertex{}))
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	return lr, nil
}

// Draw renders vertices as GL_LINES transformed by viewProj * model.
func (lr *LineRenderer) Draw(vertices []debug.LineVertex, viewProj, model math.Mat4) {
	if len(vertices) == 0 {
		return
	}

	stride := int(unsafe.Sizeof(debug.LineVertex{}))
	gl.BindVertexArray(lr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	if len(vertices) > lr.capacity {
		lr.capacity = growCap(lr.capacity, len(vertices))
		gl.BufferData(gl.ARRAY_BUFFER, lr.capacity*stride, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*stride, unsafe.Pointer(&vertices[0]))

	lr.program.Use()
	gl.UniformMatrix4fv(lr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.UniformMatrix4fv(lr.program.Uniform("uModel"), 1, false, model.Ptr())
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)
}

// Close frees GPU resources.
func (lr *LineRenderer) Close() {
	gl.DeleteVertexArrays(1, &lr.vao)
	gl.DeleteBuffers(1, &lr.vbo)
	lr.program.Delete()
}
