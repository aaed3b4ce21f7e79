// Package curve thins freshly sampled stroke points with a windowed
// Ramer-Douglas-Peucker pass.
package curve

import (
	"github.com/Faultbox/skydraw/pkg/math"
)

// Default simplification parameters.
const (
	DefaultInterval  = 10
	DefaultTolerance = 0.005
)

// Options controls how often and how aggressively points are thinned.
type Options struct {
	// Interval is the number of points added after the last simplified
	// point before the trailing window is simplified.
	Interval int
	// Tolerance is the largest deviation from a chord, in local units,
	// that a removed point may have.
	Tolerance float32
}

// DefaultOptions returns the interval and tolerance used for hand-drawn strokes.
func DefaultOptions() Options {
	return Options{
		Interval:  DefaultInterval,
		Tolerance: DefaultTolerance,
	}
}

// Simplifier keeps the sampled points of one stroke and periodically thins
// the trailing window.
//
// points is raw with interior points of processed windows removed, so it is
// always a subsequence of raw in the original order. settled is the index in
// points of the end of the last processed window; it anchors the next one.
type Simplifier struct {
	opts    Options
	raw     []math.Vec3
	points  []math.Vec3
	settled int
}

// NewSimplifier creates a simplifier. Non-positive option values fall back
// to the defaults.
func NewSimplifier(opts Options) *Simplifier {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	return &Simplifier{opts: opts}
}

// Add appends a point. Once the window from the settled point through p
// holds Interval+1 points it is simplified in place and p becomes the new
// settled point.
func (s *Simplifier) Add(p math.Vec3) {
	s.raw = append(s.raw, p)
	s.points = append(s.points, p)

	if len(s.points)-1-s.settled < s.opts.Interval {
		return
	}

	window := s.points[s.settled:]
	thinned := Simplify(window, s.opts.Tolerance)

	s.points = append(s.points[:s.settled], thinned...)
	s.settled = len(s.points) - 1
}

// Points returns the simplified sequence, including the trailing points that
// have not been through a simplification pass yet. The slice must not be
// modified.
func (s *Simplifier) Points() []math.Vec3 {
	return s.points
}

// Raw returns every point passed to Add, in order. The slice must not be
// modified.
func (s *Simplifier) Raw() []math.Vec3 {
	return s.raw
}

// Len returns the number of simplified points.
func (s *Simplifier) Len() int {
	return len(s.points)
}

// Last returns the most recent simplified point.
func (s *Simplifier) Last() (math.Vec3, bool) {
	if len(s.points) == 0 {
		return math.Vec3{}, false
	}
	return s.points[len(s.points)-1], true
}

// Reset discards all points.
func (s *Simplifier) Reset() {
	s.raw = nil
	s.points = nil
	s.settled = 0
}

// Simplify returns the Ramer-Douglas-Peucker reduction of points. The first
// and last points are always kept. When no interior point deviates from the
// chord by more than tolerance the run collapses to its two endpoints.
// The input is not modified; the result never aliases it.
func Simplify(points []math.Vec3, tolerance float32) []math.Vec3 {
	if len(points) < 3 {
		return append([]math.Vec3(nil), points...)
	}

	start, end := points[0], points[len(points)-1]
	split := 0
	maxDist := float32(0)
	for i := 1; i < len(points)-1; i++ {
		d := PerpendicularDistance(start, end, points[i])
		if d > maxDist {
			split = i
			maxDist = d
		}
	}

	if maxDist <= tolerance {
		return []math.Vec3{start, end}
	}

	left := Simplify(points[:split+1], tolerance)
	right := Simplify(points[split:], tolerance)
	return append(left, right[1:]...)
}

// PerpendicularDistance returns the distance from p to the line through
// start and end. A zero-length chord measures the distance to start.
func PerpendicularDistance(start, end, p math.Vec3) float32 {
	chord := end.Sub(start).Length()
	if chord < 1e-12 {
		return p.Distance(start)
	}
	return p.Sub(start).Cross(p.Sub(end)).Length() / chord
}
