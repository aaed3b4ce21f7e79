package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidRadius       = errors.New("drawing radius must be positive")
	ErrInvalidMinDistance  = errors.New("drawing min distance must be positive")
	ErrInvalidSides        = errors.New("drawing sides must be at least 3")
	ErrInvalidDrawDistance = errors.New("draw distance must be positive")
	ErrInvalidSimplify     = errors.New("simplify interval and tolerance must be positive")
	ErrEmptyPalette        = errors.New("palette has no materials")
	ErrUnknownMaterial     = errors.New("default material not in palette")
	ErrInvalidVolume       = errors.New("audio volume must be between 0 and 1")
)

// Validate checks the settings the drawing pipeline depends on.
func (c *Config) Validate() error {
	d := c.Drawing
	switch {
	case d.Radius <= 0:
		return fmt.Errorf("radius %v: %w", d.Radius, ErrInvalidRadius)
	case d.MinDistance <= 0:
		return fmt.Errorf("min distance %v: %w", d.MinDistance, ErrInvalidMinDistance)
	case d.Sides < 3:
		return fmt.Errorf("sides %d: %w", d.Sides, ErrInvalidSides)
	case d.DrawDistance <= 0:
		return fmt.Errorf("draw distance %v: %w", d.DrawDistance, ErrInvalidDrawDistance)
	case d.SimplifyInterval <= 0 || d.SimplifyTolerance <= 0:
		return ErrInvalidSimplify
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("volume %v: %w", c.Audio.Volume, ErrInvalidVolume)
	}

	if len(c.Palette.Materials) == 0 {
		return ErrEmptyPalette
	}
	if c.Palette.Default != "" {
		found := false
		for _, m := range c.Palette.Materials {
			if m.Name == c.Palette.Default {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q: %w", c.Palette.Default, ErrUnknownMaterial)
		}
	}
	return nil
}
