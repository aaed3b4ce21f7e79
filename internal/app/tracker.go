package app

import (
	"github.com/Faultbox/skydraw/internal/anchor"
	"github.com/Faultbox/skydraw/internal/stroke"
	"github.com/Faultbox/skydraw/pkg/math"
)

// PoseSource reports the viewer pose. ok is false while the pose is not
// usable, for example when the window has no focus.
type PoseSource interface {
	Pose() (position math.Vec3, rotation math.Quat, ok bool)
}

// Tracker hands out the drawing anchor. The anchor is placed at the viewer
// pose the first time a frame is requested and never moves afterwards.
type Tracker struct {
	source PoseSource
	anchor *anchor.Anchor
}

// NewTracker creates a tracker without an anchor.
func NewTracker(source PoseSource) *Tracker {
	return &Tracker{source: source}
}

// Frame implements stroke.FrameProvider.
func (t *Tracker) Frame() (stroke.Frame, bool) {
	if t.anchor != nil {
		return t.anchor, true
	}

	pos, rot, ok := t.source.Pose()
	if !ok {
		return nil, false
	}
	t.anchor = anchor.New(pos, rot)
	return t.anchor, true
}

// Anchor returns the anchor, or nil before the first frame request.
func (t *Tracker) Anchor() *anchor.Anchor {
	return t.anchor
}
