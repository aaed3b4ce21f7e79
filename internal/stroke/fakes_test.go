package stroke

import (
	"errors"

	"github.com/Faultbox/skydraw/internal/tube"
	"github.com/Faultbox/skydraw/pkg/math"
)

// offsetFrame moves world points by a fixed offset.
type offsetFrame struct {
	origin math.Vec3
}

func (f offsetFrame) WorldToLocal(p math.Vec3) math.Vec3 {
	return p.Sub(f.origin)
}

type fakeProvider struct {
	frame Frame
	ready bool
	calls int
}

func (p *fakeProvider) Frame() (Frame, bool) {
	p.calls++
	return p.frame, p.ready
}

type fakeRenderable struct {
	meshes    []*tube.Mesh
	updateErr error
}

func (r *fakeRenderable) Update(m *tube.Mesh) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.meshes = append(r.meshes, m)
	return nil
}

func (r *fakeRenderable) last() *tube.Mesh {
	if len(r.meshes) == 0 {
		return nil
	}
	return r.meshes[len(r.meshes)-1]
}

type fakeSink struct {
	published  []*fakeRenderable
	frames     []Frame
	detached   []Renderable
	publishErr error
}

func (s *fakeSink) Publish(m *tube.Mesh, f Frame) (Renderable, error) {
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	r := &fakeRenderable{meshes: []*tube.Mesh{m}}
	s.published = append(s.published, r)
	s.frames = append(s.frames, f)
	return r, nil
}

func (s *fakeSink) Detach(r Renderable) {
	s.detached = append(s.detached, r)
}

var errBoom = errors.New("boom")
