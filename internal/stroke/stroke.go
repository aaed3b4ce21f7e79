// Package stroke turns a stream of pointer positions into a tube mesh that
// is rebuilt and republished after every accepted point.
package stroke

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/curve"
	"github.com/Faultbox/skydraw/internal/logger"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/tube"
	"github.com/Faultbox/skydraw/pkg/math"
)

// Stroke errors.
var (
	ErrNoFrame       = errors.New("stroke: no coordinate frame")
	ErrNoMaterial    = errors.New("stroke: no material")
	ErrNoSink        = errors.New("stroke: no renderable sink")
	ErrStrokeCleared = errors.New("stroke: point added to cleared stroke")
	ErrNotTracking   = errors.New("stroke: tracking not available")
)

// Default stroke settings, in world units.
const (
	DefaultRadius      = 0.005
	DefaultMinDistance = 0.005
)

// Frame converts world space points into a stroke's local frame.
type Frame interface {
	WorldToLocal(p math.Vec3) math.Vec3
}

// FrameProvider hands out the frame new strokes are attached to. ok is false
// while no frame can be established yet.
type FrameProvider interface {
	Frame() (f Frame, ok bool)
}

// Renderable is a published mesh whose geometry can be replaced in place.
type Renderable interface {
	Update(m *tube.Mesh) error
}

// Sink creates and removes renderables. A published mesh belongs to the
// sink; the stroke never modifies it afterwards.
type Sink interface {
	Publish(m *tube.Mesh, f Frame) (Renderable, error)
	Detach(r Renderable)
}

// Options configures stroke geometry.
type Options struct {
	Radius      float32
	MinDistance float32 // Points closer than this to the last point are dropped
	Sides       int
	Simplify    curve.Options
}

// DefaultOptions returns the standard stroke settings.
func DefaultOptions() Options {
	return Options{
		Radius:      DefaultRadius,
		MinDistance: DefaultMinDistance,
		Sides:       tube.DefaultSides,
		Simplify:    curve.DefaultOptions(),
	}
}

// Stroke is a single drawn line.
type Stroke struct {
	frame Frame
	mat   *material.Material
	sink  Sink
	opts  Options

	simplifier *curve.Simplifier
	mesh       *tube.Mesh
	renderable Renderable
	cleared    bool

	log *zap.Logger
}

// New creates an empty stroke anchored to frame.
func New(frame Frame, mat *material.Material, sink Sink, opts Options) (*Stroke, error) {
	switch {
	case frame == nil:
		return nil, ErrNoFrame
	case mat == nil:
		return nil, ErrNoMaterial
	case sink == nil:
		return nil, ErrNoSink
	}

	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = DefaultMinDistance
	}
	if opts.Sides <= 0 {
		opts.Sides = tube.DefaultSides
	}

	return &Stroke{
		frame:      frame,
		mat:        mat,
		sink:       sink,
		opts:       opts,
		simplifier: curve.NewSimplifier(opts.Simplify),
		log:        logger.Named("stroke"),
	}, nil
}

// AddPoint appends a world space point. The first point only starts the
// stroke; every later accepted point rebuilds and republishes the mesh.
// Points within MinDistance of the last point are ignored.
func (s *Stroke) AddPoint(p math.Vec3) error {
	if s.cleared {
		return ErrStrokeCleared
	}

	local := s.frame.WorldToLocal(p)
	if last, ok := s.simplifier.Last(); ok && last.Distance(local) < s.opts.MinDistance {
		return nil
	}

	s.simplifier.Add(local)
	if s.simplifier.Len() < 2 {
		return nil
	}
	return s.rebuild()
}

// rebuild builds a fresh mesh from the simplified points and hands it to
// the sink.
func (s *Stroke) rebuild() error {
	start := time.Now()

	points := s.simplifier.Points()
	mesh := tube.BuildMesh(points, tube.BuildOptions{
		Radius:   s.opts.Radius,
		Sides:    s.opts.Sides,
		Material: s.mat,
	})
	if mesh == nil {
		return nil
	}

	if s.renderable == nil {
		r, err := s.sink.Publish(mesh, s.frame)
		if err != nil {
			return fmt.Errorf("publishing stroke mesh: %w", err)
		}
		s.renderable = r
	} else if err := s.renderable.Update(mesh); err != nil {
		return fmt.Errorf("updating stroke mesh: %w", err)
	}
	s.mesh = mesh

	s.log.Debug("stroke rebuilt",
		zap.Int("raw", len(s.simplifier.Raw())),
		zap.Int("points", len(points)),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Clear detaches the stroke's renderable and discards its points. A
// cleared stroke accepts no further points.
func (s *Stroke) Clear() {
	if s.cleared {
		return
	}
	if s.renderable != nil {
		s.sink.Detach(s.renderable)
	}
	s.renderable = nil
	s.mesh = nil
	s.simplifier.Reset()
	s.cleared = true
}

// NumPoints returns the number of points the mesh is built from.
func (s *Stroke) NumPoints() int {
	return s.simplifier.Len()
}

// Points returns a copy of the simplified points in the local frame.
func (s *Stroke) Points() []math.Vec3 {
	return append([]math.Vec3(nil), s.simplifier.Points()...)
}

// Mesh returns the last published mesh, or nil before the second point.
func (s *Stroke) Mesh() *tube.Mesh {
	return s.mesh
}

// Renderable returns the published renderable, or nil.
func (s *Stroke) Renderable() Renderable {
	return s.renderable
}

// Material returns the stroke's material.
func (s *Stroke) Material() *material.Material {
	return s.mat
}

// Cleared reports whether Clear has been called.
func (s *Stroke) Cleared() bool {
	return s.cleared
}

func (s *Stroke) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stroke(%s, %d points):", s.mat.Name, s.NumPoints())
	for _, p := range s.simplifier.Points() {
		fmt.Fprintf(&b, " (%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
	}
	return b.String()
}
