package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSource resolves font faces at arbitrary sizes from a single parsed
// TrueType font. Faces are cached by size so animated effects that vary the
// font size per frame do not re-rasterize the metrics tables every frame.
type FontSource struct {
	font  *truetype.Font
	faces map[int]font.Face
}

// LoadFontSource parses the preferred TrueType font at path. A missing or
// unparsable file degrades to the embedded Go Regular face; the returned
// source is always usable.
func LoadFontSource(path string) *FontSource {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if f, err := truetype.Parse(data); err == nil {
				return &FontSource{font: f, faces: make(map[int]font.Face)}
			}
		}
	}

	// goregular is a valid embedded font; parsing it cannot fail.
	f, _ := truetype.Parse(goregular.TTF)
	return &FontSource{font: f, faces: make(map[int]font.Face)}
}

// Face returns a font face at the given pixel size.
func (s *FontSource) Face(size float64) font.Face {
	key := int(size)
	if key < 1 {
		key = 1
	}
	if face, ok := s.faces[key]; ok {
		return face
	}

	face := truetype.NewFace(s.font, &truetype.Options{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[key] = face
	return face
}
