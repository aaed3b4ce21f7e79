// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Drawing  DrawingConfig  `yaml:"drawing"`
	Camera   CameraConfig   `yaml:"camera"`
	Palette  PaletteConfig  `yaml:"palette"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Path is the file the config was loaded from or last saved to.
	Path string `yaml:"-"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	Samples    int        `yaml:"samples"` // MSAA samples, 0 disables
	ClearColor [4]float32 `yaml:"clear_color"`

	ScreenshotDir   string  `yaml:"screenshot_dir"`
	ScreenshotScale float32 `yaml:"screenshot_scale"` // Offscreen capture size relative to the window
}

// DrawingConfig holds stroke geometry settings, in world units.
type DrawingConfig struct {
	Radius            float32 `yaml:"radius"`
	MinDistance       float32 `yaml:"min_distance"`       // Closer pointer samples are dropped
	Sides             int     `yaml:"sides"`              // Tube cross-section sides
	SimplifyInterval  int     `yaml:"simplify_interval"`  // Points per simplification window
	SimplifyTolerance float32 `yaml:"simplify_tolerance"` // Max deviation a removed point may have
	DrawDistance      float32 `yaml:"draw_distance"`      // Pointer depth in front of the camera
}

// CameraConfig holds the viewing camera settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // Vertical field of view in degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	Distance        float32 `yaml:"distance"` // Initial orbit distance
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// PaletteConfig lists the materials strokes can be drawn with.
type PaletteConfig struct {
	Materials []MaterialConfig `yaml:"materials"`
	Default   string           `yaml:"default"` // Material selected at startup
}

// MaterialConfig describes one palette entry. Texture is a file path or
// "builtin:rainbow"; when empty the material is a solid Color.
type MaterialConfig struct {
	Name    string     `yaml:"name"`
	Color   [4]float32 `yaml:"color"`
	Texture string     `yaml:"texture,omitempty"`
}

// AudioConfig holds feedback sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
	// Cues maps cue names (begin, end, undo, clear, material, screenshot)
	// to WAV files replacing the built-in tones.
	Cues map[string]string `yaml:"cues,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Samples:    4,
			ClearColor: [4]float32{0.12, 0.13, 0.16, 1},

			ScreenshotDir:   "screenshots",
			ScreenshotScale: 2,
		},
		Drawing: DrawingConfig{
			Radius:            0.005,
			MinDistance:       0.005,
			Sides:             8,
			SimplifyInterval:  10,
			SimplifyTolerance: 0.005,
			DrawDistance:      0.13,
		},
		Camera: CameraConfig{
			FOV:             60,
			Near:            0.01,
			Far:             100,
			Distance:        1,
			MinDistance:     0.2,
			MaxDistance:     20,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Palette: PaletteConfig{
			Materials: []MaterialConfig{
				{Name: "white", Color: [4]float32{1, 1, 1, 1}},
				{Name: "red", Color: [4]float32{0.9, 0.1, 0.1, 1}},
				{Name: "green", Color: [4]float32{0.1, 0.75, 0.2, 1}},
				{Name: "blue", Color: [4]float32{0.1, 0.3, 0.9, 1}},
				{Name: "black", Color: [4]float32{0.05, 0.05, 0.05, 1}},
				{Name: "rainbow", Color: [4]float32{1, 1, 1, 1}, Texture: "builtin:rainbow"},
			},
			Default: "white",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
