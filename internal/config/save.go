package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateMaterial is returned when a saved palette already has a
// material with the same name.
var ErrDuplicateMaterial = errors.New("palette material already exists")

// FilePath returns the file Save writes to: the loaded file, or config.yaml
// in the user's config directory.
func (c *Config) FilePath() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Save writes the config to FilePath.
func (c *Config) Save() error {
	return c.SaveTo(c.FilePath())
}

// SaveTo writes the config as YAML to path and makes it the config's file.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	c.Path = path
	return nil
}

// AddMaterial appends m to the palette stored at path and rewrites the file.
// Only what the file holds is saved, so command line overrides of a running
// client do not leak into it. A missing file starts from the defaults.
func AddMaterial(path string, m MaterialConfig) error {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, existing := range cfg.Palette.Materials {
		if existing.Name == m.Name {
			return fmt.Errorf("%q: %w", m.Name, ErrDuplicateMaterial)
		}
	}
	cfg.Palette.Materials = append(cfg.Palette.Materials, m)

	return cfg.SaveTo(path)
}
