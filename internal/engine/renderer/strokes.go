package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/engine/lighting"
	"github.com/Faultbox/skydraw/internal/engine/shader"
	"github.com/Faultbox/skydraw/internal/engine/shader/shaders"
	"github.com/Faultbox/skydraw/internal/logger"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/stroke"
	"github.com/Faultbox/skydraw/internal/tube"
	"github.com/Faultbox/skydraw/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stroke renderer errors.
var (
	ErrNilMesh  = errors.New("renderer: nil mesh")
	ErrDetached = errors.New("renderer: stroke mesh detached")
)

// DefaultTextureScale is how many texture repeats fit in one world unit of
// stroke length.
const DefaultTextureScale = 4

// modeler is implemented by frames that can place their content in the world.
type modeler interface {
	ModelMatrix() math.Mat4
}

// StrokeRenderer draws stroke tubes. It is the stroke.Sink of the
// application: each published mesh becomes a GPU mesh that later builds
// replace in place.
type StrokeRenderer struct {
	program  *shader.Program
	textures *textureCache
	meshes   []*strokeMesh

	Sun          lighting.Sun
	TextureScale float32
}

// strokeMesh is the GPU copy of one stroke.
type strokeMesh struct {
	owner *StrokeRenderer

	vao, vbo, ebo uint32
	indexCount    int32
	vertexCap     int
	indexCap      int

	material *material.Material
	model    math.Mat4
	bounds   tube.Bounds
	detached bool
}

// NewStrokeRenderer compiles the stroke shader.
func NewStrokeRenderer() (*StrokeRenderer, error) {
	program, err := shader.NewProgram(shaders.StrokeVertexShader, shaders.StrokeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("stroke shader: %w", err)
	}
	logger.Debug("stroke shader created", zap.Uint32("program", program.ID))

	return &StrokeRenderer{
		program:      program,
		textures:     newTextureCache(),
		Sun:          lighting.DefaultSun(),
		TextureScale: DefaultTextureScale,
	}, nil
}

// Publish uploads m and returns its handle. The frame's model matrix, when
// it has one, places the mesh in the world.
func (sr *StrokeRenderer) Publish(m *tube.Mesh, f stroke.Frame) (stroke.Renderable, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	sm := &strokeMesh{
		owner: sr,
		model: frameModel(f),
	}
	gl.GenVertexArrays(1, &sm.vao)
	gl.GenBuffers(1, &sm.vbo)
	gl.GenBuffers(1, &sm.ebo)

	gl.BindVertexArray(sm.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sm.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sm.ebo)

	vertexSize := int32(unsafe.Sizeof(tube.Vertex{}))
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	sm.upload(m)
	gl.BindVertexArray(0)

	sr.meshes = append(sr.meshes, sm)
	logger.Debug("stroke mesh published",
		zap.Uint32("vao", sm.vao),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("strokes", len(sr.meshes)),
	)
	return sm, nil
}

// Detach removes a published mesh and frees its GPU buffers.
func (sr *StrokeRenderer) Detach(r stroke.Renderable) {
	sm, ok := r.(*strokeMesh)
	if !ok || sm.owner != sr || sm.detached {
		return
	}

	for i, other := range sr.meshes {
		if other == sm {
			sr.meshes = append(sr.meshes[:i], sr.meshes[i+1:]...)
			break
		}
	}
	sm.release()
	logger.Debug("stroke mesh detached", zap.Int("strokes", len(sr.meshes)))
}

// Update replaces the mesh geometry, keeping the same GPU objects.
func (sm *strokeMesh) Update(m *tube.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	if sm.detached {
		return ErrDetached
	}

	gl.BindVertexArray(sm.vao)
	sm.upload(m)
	gl.BindVertexArray(0)
	return nil
}

// upload copies m into the bound VAO's buffers, growing them when needed.
func (sm *strokeMesh) upload(m *tube.Mesh) {
	vertexSize := int(unsafe.Sizeof(tube.Vertex{}))

	gl.BindBuffer(gl.ARRAY_BUFFER, sm.vbo)
	if len(m.Vertices) > sm.vertexCap {
		// Grow geometrically; strokes gain a ring per accepted point
		sm.vertexCap = growCap(sm.vertexCap, len(m.Vertices))
		gl.BufferData(gl.ARRAY_BUFFER, sm.vertexCap*vertexSize, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sm.ebo)
	if len(m.Indices) > sm.indexCap {
		sm.indexCap = growCap(sm.indexCap, len(m.Indices))
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sm.indexCap*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]))

	sm.indexCount = int32(len(m.Indices))
	sm.material = m.Material
	sm.bounds = m.Bounds
}

func (sm *strokeMesh) release() {
	gl.DeleteVertexArrays(1, &sm.vao)
	gl.DeleteBuffers(1, &sm.vbo)
	gl.DeleteBuffers(1, &sm.ebo)
	sm.vao, sm.vbo, sm.ebo = 0, 0, 0
	sm.detached = true
}

// growCap returns a capacity of at least need, doubling from current.
func growCap(current, need int) int {
	c := current
	if c == 0 {
		c = 64
	}
	for c < need {
		c *= 2
	}
	return c
}

// frameModel returns the model matrix of f, or identity.
func frameModel(f stroke.Frame) math.Mat4 {
	if m, ok := f.(modeler); ok {
		return m.ModelMatrix()
	}
	return math.Identity()
}

// Len returns the number of published meshes.
func (sr *StrokeRenderer) Len() int {
	return len(sr.meshes)
}

// Bounds returns the local bounds and model matrix of the most recently
// published mesh.
func (sr *StrokeRenderer) Bounds() (tube.Bounds, math.Mat4, bool) {
	if len(sr.meshes) == 0 {
		return tube.Bounds{}, math.Identity(), false
	}
	last := sr.meshes[len(sr.meshes)-1]
	return last.bounds, last.model, true
}

// Render draws every stroke.
func (sr *StrokeRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3) {
	if len(sr.meshes) == 0 {
		return
	}

	sr.program.Use()
	gl.UniformMatrix4fv(sr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())

	light := sr.Sun.Direction()
	gl.Uniform3f(sr.program.Uniform("uLightDir"), light[0], light[1], light[2])
	gl.Uniform3f(sr.program.Uniform("uAmbient"), sr.Sun.Ambient[0], sr.Sun.Ambient[1], sr.Sun.Ambient[2])
	gl.Uniform3f(sr.program.Uniform("uDiffuse"), sr.Sun.Diffuse[0], sr.Sun.Diffuse[1], sr.Sun.Diffuse[2])
	gl.Uniform3f(sr.program.Uniform("uCameraPos"), cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform1f(sr.program.Uniform("uTextureScale"), sr.TextureScale)
	gl.Uniform1i(sr.program.Uniform("uTexture"), 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, sm := range sr.meshes {
		if sm.indexCount == 0 || sm.material == nil {
			continue
		}
		c := sm.material.Color
		gl.Uniform4f(sr.program.Uniform("uColor"), c[0], c[1], c[2], c[3])
		gl.UniformMatrix4fv(sr.program.Uniform("uModel"), 1, false, sm.model.Ptr())
		gl.BindTexture(gl.TEXTURE_2D, sr.textures.get(sm.material))

		gl.BindVertexArray(sm.vao)
		gl.DrawElements(gl.TRIANGLES, sm.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// Close frees every mesh, texture and the shader.
func (sr *StrokeRenderer) Close() {
	for _, sm := range sr.meshes {
		sm.release()
	}
	sr.meshes = nil
	sr.textures.close()
	sr.program.Delete()
}
