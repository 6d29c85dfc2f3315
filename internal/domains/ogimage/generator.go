package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"compass-backend/internal/config"
)

// Fixed social-card dimensions expected by the og:image consumers.
const (
	Width  = 1200
	Height = 630
)

const (
	titleSize    = 56
	lineSpacing  = 1.2
	marginX      = 72 // matches the layout's 4.5rem left inset
	marginBottom = 40 // 2.5rem bottom inset
	titleColor   = "#FFFAEF"
	fallbackFill = "#0D1829"
)

// Generator rasterizes fixed-layout title cards. The font face and the
// optional background are loaded once at startup; Render itself is a pure
// draw over those.
type Generator struct {
	face       font.Face
	background image.Image
}

func NewGenerator(cfg config.OGConfig) (*Generator, error) {
	fontData := goregular.TTF
	if cfg.FontPath != "" {
		data, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read og font: %w", err)
		}
		fontData = data
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse og font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    titleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build og font face: %w", err)
	}

	g := &Generator{face: face}

	if cfg.BackgroundPath != "" {
		img, err := imaging.Open(cfg.BackgroundPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open og background: %w", err)
		}
		g.background = imaging.Fill(img, Width, Height, imaging.Center, imaging.Lanczos)
	}

	return g, nil
}

// Render draws the title card and returns it PNG-encoded. Identical titles
// produce identical images.
func (g *Generator) Render(title string) ([]byte, error) {
	dc := gg.NewContext(Width, Height)

	if g.background != nil {
		dc.DrawImage(g.background, 0, 0)
	} else {
		dc.SetHexColor(fallbackFill)
		dc.Clear()
	}

	dc.SetFontFace(g.face)
	dc.SetHexColor(titleColor)

	// Anchor the title block to the bottom-left corner, wrapping inside
	// the horizontal margins.
	dc.DrawStringWrapped(title,
		marginX, float64(Height-marginBottom),
		0, 1,
		float64(Width-2*marginX),
		lineSpacing, gg.AlignLeft)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode og image: %w", err)
	}
	return buf.Bytes(), nil
}
