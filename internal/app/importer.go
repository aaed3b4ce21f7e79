package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/skydraw/internal/config"
	"github.com/Faultbox/skydraw/internal/material"
)

// pickFunc asks the user for a file. It returns dialog.ErrCancelled when the
// user backs out.
type pickFunc func() (string, error)

// pickTexture shows a native file dialog for image files.
func pickTexture() (string, error) {
	return dialog.File().
		Filter("Images", "png", "jpg", "jpeg", "bmp", "tga").
		Filter("All Files", "*").
		Title("Import Texture Material").
		Load()
}

// TextureImporter adds textured materials chosen in a file dialog.
type TextureImporter struct {
	pick    pickFunc
	log     *zap.Logger
	pending chan string
	open    bool
}

// NewTextureImporter creates an importer using the native file dialog.
func NewTextureImporter(log *zap.Logger) *TextureImporter {
	return newTextureImporter(pickTexture, log)
}

func newTextureImporter(pick pickFunc, log *zap.Logger) *TextureImporter {
	return &TextureImporter{
		pick:    pick,
		log:     log,
		pending: make(chan string, 1),
	}
}

// Request opens the dialog without blocking the frame loop. Requests made
// while a dialog is open are ignored. Call Poll from the main thread only.
func (ti *TextureImporter) Request() {
	if ti.open {
		return
	}
	ti.open = true

	go func() {
		path, err := ti.pick()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				ti.log.Error("file dialog failed", zap.Error(err))
			}
			path = ""
		}
		ti.pending <- path
	}()
}

// Poll returns the chosen path once the dialog has closed. ok is false while
// no dialog result is waiting or the dialog was cancelled.
func (ti *TextureImporter) Poll() (path string, ok bool) {
	select {
	case path = <-ti.pending:
		ti.open = false
		return path, path != ""
	default:
		return "", false
	}
}

// AddTextureMaterial adds a material for the image at path to p, named after
// the file. A numeric suffix keeps the name unique. Returns the new index.
func AddTextureMaterial(p *material.Palette, path string) (int, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if base == "" || base == "." {
		base = "texture"
	}

	name := base
	for n := 2; ; n++ {
		if _, taken := p.Get(name); !taken {
			break
		}
		name = fmt.Sprintf("%s-%d", base, n)
	}

	return p.Add(material.Textured(name, path))
}

// SaveTextureMaterial records m in the palette of the config file at path
// so imported textures come back on the next start.
func SaveTextureMaterial(path string, m *material.Material) error {
	return config.AddMaterial(path, config.MaterialConfig{
		Name:    m.Name,
		Color:   m.Color,
		Texture: m.Texture,
	})
}
