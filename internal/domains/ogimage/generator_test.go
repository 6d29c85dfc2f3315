package ogimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-backend/internal/config"
)

func TestGeneratorRenderDimensions(t *testing.T) {
	gen, err := NewGenerator(config.OGConfig{})
	require.NoError(t, err)

	data, err := gen.Render("Understanding the Compass")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Width, cfg.Width)
	assert.Equal(t, Height, cfg.Height)
}

func TestGeneratorRenderDeterministic(t *testing.T) {
	gen, err := NewGenerator(config.OGConfig{})
	require.NoError(t, err)

	first, err := gen.Render("Same Title")
	require.NoError(t, err)
	second, err := gen.Render("Same Title")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGeneratorRenderLongTitleWraps(t *testing.T) {
	gen, err := NewGenerator(config.OGConfig{})
	require.NoError(t, err)

	data, err := gen.Render("A very long headline that does not fit on a single line and must wrap across several rows of the card")
	require.NoError(t, err)

	_, err = png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestNewGeneratorMissingFont(t *testing.T) {
	_, err := NewGenerator(config.OGConfig{FontPath: "/nonexistent/font.ttf"})
	assert.Error(t, err)
}
