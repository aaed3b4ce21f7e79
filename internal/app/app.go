// Package app implements the drawing application: the main loop wiring
// input, the stroke set and the renderers together.
package app

import (
	"fmt"
	gomath "math"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/config"
	"github.com/Faultbox/skydraw/internal/engine/audio"
	"github.com/Faultbox/skydraw/internal/engine/camera"
	"github.com/Faultbox/skydraw/internal/engine/debug"
	"github.com/Faultbox/skydraw/internal/engine/framebuffer"
	"github.com/Faultbox/skydraw/internal/engine/hud"
	"github.com/Faultbox/skydraw/internal/engine/input"
	"github.com/Faultbox/skydraw/internal/engine/renderer"
	"github.com/Faultbox/skydraw/internal/engine/window"
	"github.com/Faultbox/skydraw/internal/logger"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/stroke"
	"github.com/Faultbox/skydraw/pkg/math"
)

const (
	title = "SkyDraw"

	gridCells   = 10
	gridSpacing = 0.1
	floorY      = 0

	cursorSize      = 0.01
	floorCursorSize = 0.03
)

// App is the main application instance.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	strokes  *renderer.StrokeRenderer
	lines    *renderer.LineRenderer
	overlay  *renderer.OverlayRenderer
	input    *input.Input
	sounds   *audio.Manager

	camera      *camera.OrbitCamera
	pose        *cameraPose
	tracker     *Tracker
	palette     *material.Palette
	drawing     *stroke.Set
	controls    *Controls
	importer    *TextureImporter
	screenshots *debug.ScreenshotCapture
	capture     *framebuffer.Target

	grid  []debug.LineVertex
	hud   *hud.Batch
	title string
}

// New creates the window, the renderers and an empty drawing.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	palette, selected, err := BuildPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		camera:      newCamera(cfg.Camera),
		palette:     palette,
		screenshots: debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "skydraw"),
		grid:        debug.FloorGrid(gridCells, gridSpacing, floorY),
		hud:         hud.NewBatch(),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderers (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.strokes, err = renderer.NewStrokeRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create stroke renderer: %w", err)
	}

	a.lines, err = renderer.NewLineRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create line renderer: %w", err)
	}

	a.overlay, err = renderer.NewOverlayRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	a.input = input.New()

	a.pose = &cameraPose{camera: a.camera}
	a.tracker = NewTracker(a.pose)
	a.drawing = stroke.NewSet(a.tracker, a.strokes, StrokeOptions(cfg.Drawing))

	w, h := a.window.GetSize()
	a.controls = NewControls(a.drawing, a.camera, palette, selected, cfg.Drawing.DrawDistance, w, h, log)
	a.importer = NewTextureImporter(log)

	if cfg.Audio.Enabled {
		if a.sounds = newSounds(cfg.Audio, log); a.sounds != nil {
			a.controls.SetSounds(a.sounds)
		}
	}

	log.Info("initialized", zap.Strings("palette", palette.Names()))
	return a, nil
}

// newCamera creates the orbit camera from settings. FOV is configured in
// degrees.
func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.FOV = cfg.FOV * gomath.Pi / 180
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.Distance = cfg.Distance
	cam.MinDistance = cfg.MinDistance
	cam.MaxDistance = cfg.MaxDistance
	cam.DragSensitivity = cfg.DragSensitivity
	cam.ZoomSensitivity = cfg.ZoomSensitivity
	return cam
}

// newSounds opens the audio device and loads custom cues. Returns nil when
// no audio device is available.
func newSounds(cfg config.AudioConfig, log *zap.Logger) *audio.Manager {
	m := audio.New()
	m.SetVolume(cfg.Volume)

	for name, path := range cfg.Cues {
		cue, err := audio.ParseCue(name)
		if err != nil {
			log.Warn("ignoring cue", zap.String("path", path), zap.Error(err))
			continue
		}
		data, err := os.ReadFile(path)
		if err == nil {
			err = m.LoadCue(cue, data)
		}
		if err != nil {
			log.Warn("keeping built-in cue", zap.Stringer("cue", cue), zap.Error(err))
		}
	}

	if err := m.Init(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
		return nil
	}
	return m
}

// Run starts the main loop and returns when the window is closed or the
// user quits.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	a.log.Info("starting main loop")

	for a.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.controls.Handle(event)
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.GetDrawableSize())
			}
		}
		if a.controls.Quit {
			a.running = false
			break
		}

		if a.controls.ImportTexture {
			a.controls.ImportTexture = false
			a.importer.Request()
		}
		if path, ok := a.importer.Poll(); ok {
			a.importTexture(path)
		}

		// 2. Update state
		a.update(dt)

		// 3. Render
		a.render()

		if a.controls.Screenshot {
			a.controls.Screenshot = false
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()
		a.pose.ready = true

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("strokes", a.drawing.Len()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.drawing != nil {
		a.drawing.Clear()
	}
	if a.sounds != nil {
		a.sounds.Close()
	}
	if a.capture != nil {
		a.capture.Close()
	}
	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.lines != nil {
		a.lines.Close()
	}
	if a.strokes != nil {
		a.strokes.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// update applies held keys and refreshes the window title.
func (a *App) update(dt float64) {
	forward, right, up := movement(a.input.IsKeyDown)
	if forward != 0 || right != 0 || up != 0 {
		// Pan speed is tuned for 60 frames per second
		scale := float32(dt * 60)
		a.camera.HandleMovement(forward*scale, right*scale, up*scale)
		if a.controls.Drawing() {
			a.controls.extendStroke()
		}
	}

	t := a.windowTitle()
	if t != a.title {
		a.title = t
		a.window.SetTitle(t)
	}
}

func (a *App) windowTitle() string {
	name := "none"
	if m := a.drawing.Material(); m != nil {
		name = m.Name
	}
	return fmt.Sprintf("%s - %s - %d strokes", title, name, a.drawing.Len())
}

// render draws the scene, the pointer guides and the palette.
func (a *App) render() {
	viewProj := a.camera.ViewProjection(a.renderer.Aspect())

	a.renderer.Begin()
	a.renderScene(viewProj)

	p := a.controls.PointerPosition()
	guides := debug.Cursor(p, cursorSize)
	guides = append(guides, debug.DropLine(p, math.Vec3{X: p.X, Y: floorY, Z: p.Z})...)
	if hit, ok := a.controls.PointerRay().IntersectPlaneY(floorY); ok {
		guides = append(guides, debug.Cursor(hit, floorCursorSize)...)
	}
	a.lines.Draw(guides, viewProj, math.Identity())

	if a.controls.ShowBounds {
		if b, model, ok := a.strokes.Bounds(); ok {
			a.lines.Draw(debug.BoundsWireframe(b, a.cfg.Drawing.Radius), viewProj, model)
		}
	}

	// Palette bar in window coordinates, which is also where clicks land
	a.hud.Reset()
	if a.controls.ShowPalette {
		w, h := a.window.GetSize()
		a.controls.SetSwatches(hud.PaletteBar(a.hud, a.palette, a.controls.Selected(), float32(w), float32(h)))
		a.overlay.Draw(a.hud, w, h)
	}

	a.renderer.End()
}

// renderScene draws the floor grid and the strokes.
func (a *App) renderScene(viewProj math.Mat4) {
	a.lines.Draw(a.grid, viewProj, math.Identity())
	a.strokes.Render(viewProj, a.camera.Position())
}

// screenshot saves the scene without guides, rendered offscreen at
// screenshot_scale times the window resolution. It falls back to the
// current back buffer when no offscreen target can be created.
func (a *App) screenshot() {
	dw, dh := a.renderer.Size()
	w, h := framebuffer.ScaledSize(dw, dh, a.cfg.Graphics.ScreenshotScale)

	var pixels []byte
	if err := a.ensureCapture(w, h); err != nil {
		a.log.Warn("offscreen capture unavailable", zap.Error(err))
		pixels, w, h = a.renderer.ReadPixels()
	} else {
		w, h = a.capture.Size()
		restore := a.capture.Bind()
		a.renderer.Begin()
		a.renderScene(a.camera.ViewProjection(float32(w) / float32(h)))
		a.renderer.End()
		pixels = a.capture.ReadPixels()
		restore()
	}

	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
	if a.sounds != nil {
		if err := a.sounds.Play(audio.CueScreenshot); err != nil {
			a.log.Debug("cue not played", zap.Error(err))
		}
	}
}

func (a *App) ensureCapture(w, h int) error {
	if a.capture != nil {
		a.capture.Resize(w, h)
		return nil
	}
	t, err := framebuffer.New(w, h)
	if err != nil {
		return err
	}
	a.capture = t
	return nil
}

// importTexture adds the image at path to the palette and selects it. An
// unreadable image still becomes a material and renders with the fallback
// texture.
func (a *App) importTexture(path string) {
	i, err := AddTextureMaterial(a.palette, path)
	if err != nil {
		a.log.Error("texture import failed", zap.String("path", path), zap.Error(err))
		return
	}
	a.log.Info("texture material added", zap.String("path", path), zap.Int("index", i))
	a.controls.SelectMaterial(i)

	file := a.cfg.FilePath()
	if err := SaveTextureMaterial(file, a.palette.At(i)); err != nil {
		a.log.Warn("texture material not saved", zap.String("config", file), zap.Error(err))
		return
	}
	a.log.Debug("texture material saved", zap.String("config", file))
}

// cameraPose reports the camera pose once a frame has been presented.
type cameraPose struct {
	camera *camera.OrbitCamera
	ready  bool
}

func (p *cameraPose) Pose() (math.Vec3, math.Quat, bool) {
	if !p.ready {
		return math.Vec3{}, math.Quat{}, false
	}
	return p.camera.Position(), p.camera.Rotation(), true
}
