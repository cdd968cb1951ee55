package ebitenhost

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/agiangrant/menukit/retained"
)

// Font adapts an Ebiten text face to retained.Font.
type Font struct {
	Face text.Face
}

// NewFont wraps face.
func NewFont(face text.Face) *Font {
	return &Font{Face: face}
}

// LoadFont parses a TrueType or OpenType font and returns it at size pixels.
func LoadFont(data []byte, size float64) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return NewFont(&text.GoTextFace{Source: src, Size: size}), nil
}

// DefaultFont returns Go Regular at size pixels, or the 7x13 bitmap face if
// it cannot be parsed.
func DefaultFont(size float64) *Font {
	f, err := LoadFont(goregular.TTF, size)
	if err != nil {
		return BitmapFont()
	}
	return f
}

// BitmapFont returns the fixed 7x13 face.
func BitmapFont() *Font {
	return NewFont(text.NewGoXFace(basicfont.Face7x13))
}

// Measure returns the size of s rounded up to whole pixels.
func (f *Font) Measure(s string) image.Point {
	if s == "" {
		return image.Point{}
	}
	w, h := text.Measure(s, f.Face, lineSpacing(f.Face))
	return image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
}

func lineSpacing(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

var fallbackFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// faceOf returns the Ebiten face behind f. Fonts from other backends fall
// back to the bitmap face.
func faceOf(f retained.Font) text.Face {
	if ef, ok := f.(*Font); ok && ef.Face != nil {
		return ef.Face
	}
	return fallbackFace
}
