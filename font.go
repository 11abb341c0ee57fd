package scenetree

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextMeasurer reports the rendered size of a single line of text.
type TextMeasurer interface {
	Measure(s string, size float64) (width, height float64)
}

// Font wraps Ebitengine's text/v2 for TrueType rendering at any pixel size.
// Faces are created lazily per size and cached.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses raw TTF/OTF data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scenetree: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultFont loads the Go Regular font bundled with golang.org/x/image.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// Face returns the face for the given pixel size.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Measure returns the width and height of s rendered at size.
func (f *Font) Measure(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), 0)
}
