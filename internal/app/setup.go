package app

import (
	"fmt"

	"github.com/Faultbox/skydraw/internal/config"
	"github.com/Faultbox/skydraw/internal/curve"
	"github.com/Faultbox/skydraw/internal/material"
	"github.com/Faultbox/skydraw/internal/stroke"
)

// StrokeOptions converts drawing settings to stroke options.
func StrokeOptions(cfg config.DrawingConfig) stroke.Options {
	return stroke.Options{
		Radius:      cfg.Radius,
		MinDistance: cfg.MinDistance,
		Sides:       cfg.Sides,
		Simplify: curve.Options{
			Interval:  cfg.SimplifyInterval,
			Tolerance: cfg.SimplifyTolerance,
		},
	}
}

// BuildPalette creates the material palette and returns the index of the
// default material.
func BuildPalette(cfg config.PaletteConfig) (*material.Palette, int, error) {
	materials := make([]*material.Material, 0, len(cfg.Materials))
	for _, mc := range cfg.Materials {
		m := material.Solid(mc.Name, mc.Color)
		if mc.Texture != "" {
			m.Texture = mc.Texture
			if mc.Color == ([4]float32{}) {
				m.Color = material.White
			}
		}
		materials = append(materials, m)
	}

	palette, err := material.NewPalette(materials...)
	if err != nil {
		return nil, 0, fmt.Errorf("building palette: %w", err)
	}

	if cfg.Default == "" {
		return palette, 0, nil
	}
	for i, name := range palette.Names() {
		if name == cfg.Default {
			return palette, i, nil
		}
	}
	return nil, 0, fmt.Errorf("default material %q: %w", cfg.Default, config.ErrUnknownMaterial)
}
