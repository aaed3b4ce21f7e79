package stroke

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/logger"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/pkg/math"
)

// Set is the collection of strokes in a drawing. It turns pointer events
// into strokes and supports undo and clear.
//
// All strokes share one frame, taken from the provider when the first
// stroke begins.
type Set struct {
	frames FrameProvider
	sink   Sink
	opts   Options

	frame    Frame
	material *material.Material
	strokes  []*Stroke
	current  *Stroke

	log *zap.Logger
}

// NewSet creates an empty drawing.
func NewSet(frames FrameProvider, sink Sink, opts Options) *Set {
	return &Set{
		frames: frames,
		sink:   sink,
		opts:   opts,
		log:    logger.Named("strokes"),
	}
}

// SetMaterial sets the material for strokes begun afterwards.
func (s *Set) SetMaterial(m *material.Material) {
	s.material = m
}

// Material returns the material new strokes will use.
func (s *Set) Material() *material.Material {
	return s.material
}

// Frame returns the shared frame, or nil before the first stroke.
func (s *Set) Frame() Frame {
	return s.frame
}

// Begin starts a new stroke at p. An active stroke is ended first.
func (s *Set) Begin(p math.Vec3) error {
	s.End()

	if s.frame == nil {
		if s.frames == nil {
			return ErrNotTracking
		}
		f, ok := s.frames.Frame()
		if !ok || f == nil {
			return ErrNotTracking
		}
		s.frame = f
		s.log.Debug("drawing frame established")
	}
	if s.material == nil {
		return ErrNoMaterial
	}

	st, err := New(s.frame, s.material, s.sink, s.opts)
	if err != nil {
		return err
	}
	if err := st.AddPoint(p); err != nil {
		return err
	}

	s.strokes = append(s.strokes, st)
	s.current = st
	s.log.Debug("stroke begun",
		zap.Int("strokes", len(s.strokes)),
		zap.String("material", s.material.Name))
	return nil
}

// Extend adds p to the active stroke. It does nothing when no stroke is
// active.
func (s *Set) Extend(p math.Vec3) error {
	if s.current == nil {
		return nil
	}
	return s.current.AddPoint(p)
}

// End finishes the active stroke.
func (s *Set) End() {
	if s.current == nil {
		return
	}
	s.log.Debug("stroke ended", zap.Int("points", s.current.NumPoints()))
	s.current = nil
}

// Undo clears and removes the most recent stroke. It returns false when the
// drawing is empty.
func (s *Set) Undo() bool {
	if len(s.strokes) == 0 {
		return false
	}

	last := s.strokes[len(s.strokes)-1]
	if last == s.current {
		s.current = nil
	}
	last.Clear()
	s.strokes[len(s.strokes)-1] = nil
	s.strokes = s.strokes[:len(s.strokes)-1]

	s.log.Debug("stroke undone", zap.Int("strokes", len(s.strokes)))
	return true
}

// Clear removes every stroke. The shared frame is kept.
func (s *Set) Clear() {
	for _, st := range s.strokes {
		st.Clear()
	}
	s.strokes = nil
	s.current = nil
	s.log.Debug("drawing cleared")
}

// Strokes returns the strokes in drawing order.
func (s *Set) Strokes() []*Stroke {
	return append([]*Stroke(nil), s.strokes...)
}

// Len returns the number of strokes.
func (s *Set) Len() int {
	return len(s.strokes)
}

// Current returns the active stroke, or nil.
func (s *Set) Current() *Stroke {
	return s.current
}
