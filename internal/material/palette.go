package material

import (
	"errors"
	"fmt"
)

// Palette errors.
var (
	ErrEmptyName         = errors.New("material name is empty")
	ErrDuplicateMaterial = errors.New("duplicate material name")
	ErrEmptyPalette      = errors.New("palette has no materials")
)

// Palette is an ordered set of materials the user can pick from.
type Palette struct {
	materials []*Material
	byName    map[string]*Material
}

// NewPalette creates a palette keeping the order of materials.
func NewPalette(materials ...*Material) (*Palette, error) {
	if len(materials) == 0 {
		return nil, ErrEmptyPalette
	}

	p := &Palette{
		materials: make([]*Material, 0, len(materials)),
		byName:    make(map[string]*Material, len(materials)),
	}
	for i, m := range materials {
		if _, err := p.Add(m); err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
	}
	return p, nil
}

// Add appends m and returns its index.
func (p *Palette) Add(m *Material) (int, error) {
	if m == nil || m.Name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := p.byName[m.Name]; ok {
		return 0, fmt.Errorf("%q: %w", m.Name, ErrDuplicateMaterial)
	}
	p.materials = append(p.materials, m)
	p.byName[m.Name] = m
	return len(p.materials) - 1, nil
}

// DefaultPalette returns white, red, green, blue, black and rainbow.
func DefaultPalette() *Palette {
	p, _ := NewPalette(
		Solid("white", White),
		Solid("red", Red),
		Solid("green", Green),
		Solid("blue", Blue),
		Solid("black", Black),
		Textured("rainbow", BuiltinRainbow),
	)
	return p
}

// Get returns the material with the given name.
func (p *Palette) Get(name string) (*Material, bool) {
	m, ok := p.byName[name]
	return m, ok
}

// At returns the i-th material, or nil if i is out of range.
func (p *Palette) At(i int) *Material {
	if i < 0 || i >= len(p.materials) {
		return nil
	}
	return p.materials[i]
}

// Names returns material names in palette order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.materials))
	for i, m := range p.materials {
		names[i] = m.Name
	}
	return names
}

// Len returns the number of materials.
func (p *Palette) Len() int {
	return len(p.materials)
}
