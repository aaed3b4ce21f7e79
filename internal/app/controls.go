package app

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/engine/audio"
	"github.com/Faultbox/skydraw/internal/engine/camera"
	"github.com/Faultbox/skydraw/internal/engine/hud"
	"github.com/Faultbox/skydraw/internal/engine/input"
	"github.com/Faultbox/skydraw/internal/engine/picking"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/stroke"
	"github.com/Faultbox/skydraw/pkg/math"
)

// Drawing is the part of stroke.Set the controls drive.
type Drawing interface {
	Begin(p math.Vec3) error
	Extend(p math.Vec3) error
	End()
	Undo() bool
	Clear()
	SetMaterial(m *material.Material)
}

// Sounds plays feedback cues.
type Sounds interface {
	Play(c audio.Cue) error
}

// paletteKeys select palette entries by position.
var paletteKeys = []sdl.Scancode{
	sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3,
	sdl.SCANCODE_4, sdl.SCANCODE_5, sdl.SCANCODE_6,
	sdl.SCANCODE_7, sdl.SCANCODE_8, sdl.SCANCODE_9,
}

// Controls turns input events into drawing and camera actions.
//
// Left button draws: press begins a stroke at the pointer, motion extends it
// and release ends it. Right button drag orbits, the wheel zooms. Number keys
// and palette swatches pick the material.
type Controls struct {
	drawing      Drawing
	camera       *camera.OrbitCamera
	palette      *material.Palette
	drawDistance float32
	log          *zap.Logger
	sounds       Sounds

	width, height int // Window size in pointer coordinates
	pointerX      int
	pointerY      int
	selected      int
	swatches      []hud.Swatch

	drawingActive bool
	orbiting      bool

	// Requests consumed by the frame loop
	ShowPalette   bool
	ShowBounds    bool
	Screenshot    bool
	ImportTexture bool
	Quit          bool
}

// NewControls creates controls for a window of the given size. selected is
// the palette index applied to the drawing immediately.
func NewControls(d Drawing, cam *camera.OrbitCamera, palette *material.Palette, selected int, drawDistance float32, width, height int, log *zap.Logger) *Controls {
	c := &Controls{
		drawing:      d,
		camera:       cam,
		palette:      palette,
		drawDistance: drawDistance,
		log:          log,
		width:        width,
		height:       height,
		selected:     -1,
		ShowPalette:  true,
	}
	c.SelectMaterial(selected)
	return c
}

// SetSounds enables feedback cues. nil disables them.
func (c *Controls) SetSounds(s Sounds) {
	c.sounds = s
}

func (c *Controls) play(cue audio.Cue) {
	if c.sounds == nil {
		return
	}
	if err := c.sounds.Play(cue); err != nil {
		c.log.Debug("cue not played", zap.Stringer("cue", cue), zap.Error(err))
	}
}

// SetSwatches sets the palette swatches under the pointer. Clicking a
// swatch selects its material instead of drawing.
func (c *Controls) SetSwatches(s []hud.Swatch) {
	c.swatches = s
}

// Resize updates the window size used for picking.
func (c *Controls) Resize(width, height int) {
	c.width, c.height = width, height
}

// Selected returns the palette index of the current material.
func (c *Controls) Selected() int {
	return c.selected
}

// Drawing reports whether a stroke is being drawn.
func (c *Controls) Drawing() bool {
	return c.drawingActive
}

// PointerRay returns the ray from the camera through the pointer.
func (c *Controls) PointerRay() picking.Ray {
	aspect := float32(1)
	if c.height > 0 {
		aspect = float32(c.width) / float32(c.height)
	}
	inv := c.camera.ViewProjection(aspect).Inverse()
	ray := picking.ScreenToRay(float32(c.pointerX), float32(c.pointerY), float32(c.width), float32(c.height), inv)
	return ray.FromEye(c.camera.Position())
}

// PointerPosition returns the world position strokes are drawn at: the point
// drawDistance in front of the camera under the pointer.
func (c *Controls) PointerPosition() math.Vec3 {
	return c.PointerRay().Point(c.drawDistance)
}

// Handle applies one event.
func (c *Controls) Handle(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		c.Quit = true

	case input.EventWindowResize:
		c.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		c.pointerX, c.pointerY = e.MouseX, e.MouseY
		switch e.Button {
		case sdl.BUTTON_LEFT:
			if i := hud.HitSwatch(c.swatches, float32(e.MouseX), float32(e.MouseY)); i >= 0 {
				if c.SelectMaterial(i) {
					c.play(audio.CueMaterial)
				}
				return
			}
			c.beginStroke()
		case sdl.BUTTON_RIGHT:
			c.orbiting = true
		}

	case input.EventMouseUp:
		c.pointerX, c.pointerY = e.MouseX, e.MouseY
		switch e.Button {
		case sdl.BUTTON_LEFT:
			c.endStroke()
		case sdl.BUTTON_RIGHT:
			c.orbiting = false
		}

	case input.EventMouseMove:
		c.pointerX, c.pointerY = e.MouseX, e.MouseY
		if c.orbiting {
			c.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
		if c.drawingActive {
			c.extendStroke()
		}

	case input.EventMouseWheel:
		c.camera.HandleZoom(float32(e.DeltaY))

	case input.EventKeyDown:
		if !e.Repeat {
			c.handleKey(e.Key)
		}
	}
}

func (c *Controls) handleKey(key sdl.Scancode) {
	for i, k := range paletteKeys {
		if k == key {
			if c.SelectMaterial(i) {
				c.play(audio.CueMaterial)
			}
			return
		}
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		c.Quit = true
	case sdl.SCANCODE_Z, sdl.SCANCODE_BACKSPACE:
		c.endStroke()
		if c.drawing.Undo() {
			c.log.Info("stroke undone")
			c.play(audio.CueUndo)
		}
	case sdl.SCANCODE_C:
		c.endStroke()
		c.drawing.Clear()
		c.log.Info("drawing cleared")
		c.play(audio.CueClear)
	case sdl.SCANCODE_B:
		c.ShowBounds = !c.ShowBounds
	case sdl.SCANCODE_H:
		c.ShowPalette = !c.ShowPalette
		if !c.ShowPalette {
			c.swatches = nil
		}
	case sdl.SCANCODE_P, sdl.SCANCODE_F12:
		c.Screenshot = true
	case sdl.SCANCODE_O:
		c.ImportTexture = true
	}
}

// SelectMaterial switches to palette entry i and reports whether the
// material changed. Strokes already drawn keep their material.
func (c *Controls) SelectMaterial(i int) bool {
	m := c.palette.At(i)
	if m == nil || i == c.selected {
		return false
	}
	c.selected = i
	c.drawing.SetMaterial(m)
	c.log.Info("material selected", zap.Int("index", i), zap.Stringer("material", m))
	return true
}

func (c *Controls) beginStroke() {
	err := c.drawing.Begin(c.PointerPosition())
	switch {
	case errors.Is(err, stroke.ErrNotTracking):
		c.log.Warn("cannot draw yet", zap.Error(err))
	case err != nil:
		c.log.Error("failed to begin stroke", zap.Error(err))
	default:
		c.drawingActive = true
		c.play(audio.CueStrokeBegin)
	}
}

func (c *Controls) extendStroke() {
	if err := c.drawing.Extend(c.PointerPosition()); err != nil {
		c.log.Error("failed to extend stroke", zap.Error(err))
	}
}

func (c *Controls) endStroke() {
	if !c.drawingActive {
		return
	}
	c.drawingActive = false
	c.drawing.End()
	c.play(audio.CueStrokeEnd)
}

// movement returns the camera pan input from held keys.
func movement(held func(sdl.Scancode) bool) (forward, right, up float32) {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if held(pos) {
			v++
		}
		if held(neg) {
			v--
		}
		return v
	}
	return axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		axis(sdl.SCANCODE_E, sdl.SCANCODE_Q)
}
