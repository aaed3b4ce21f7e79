package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	require.NotNil(t, p)

	assert.Equal(t, []string{"white", "red", "green", "blue", "black", "rainbow"}, p.Names())
	assert.Equal(t, 6, p.Len())

	rainbow, ok := p.Get("rainbow")
	require.True(t, ok)
	assert.True(t, rainbow.IsTextured())
	assert.Equal(t, BuiltinRainbow, rainbow.Texture)

	white, ok := p.Get("white")
	require.True(t, ok)
	assert.False(t, white.IsTextured())
	assert.Equal(t, White, white.Color)
}

func TestPaletteAt(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, "white", p.At(0).Name)
	assert.Equal(t, "rainbow", p.At(5).Name)
	assert.Nil(t, p.At(-1))
	assert.Nil(t, p.At(6))
}

func TestPaletteSharesHandles(t *testing.T) {
	p := DefaultPalette()
	a, _ := p.Get("red")
	assert.Same(t, a, p.At(1))
}

func TestNewPaletteErrors(t *testing.T) {
	tests := []struct {
		name      string
		materials []*Material
		want      error
	}{
		{"empty", nil, ErrEmptyPalette},
		{"nil material", []*Material{nil}, ErrEmptyName},
		{"no name", []*Material{Solid("", White)}, ErrEmptyName},
		{"duplicate", []*Material{Solid("a", White), Solid("a", Red)}, ErrDuplicateMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPalette(tt.materials...)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMaterialString(t *testing.T) {
	assert.Equal(t, "red(rgba=0.90,0.10,0.10,1.00)", Solid("red", Red).String())
	assert.Equal(t, "sky(texture=sky.png)", Textured("sky", "sky.png").String())
}

func TestPaletteAdd(t *testing.T) {
	p := DefaultPalette()

	i, err := p.Add(Textured("bricks", "bricks.png"))
	require.NoError(t, err)
	assert.Equal(t, 6, i)
	assert.Equal(t, "bricks", p.At(i).Name)

	_, err = p.Add(Solid("red", Red))
	assert.ErrorIs(t, err, ErrDuplicateMaterial)
	_, err = p.Add(nil)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 7, p.Len())
}
