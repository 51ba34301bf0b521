package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Text sizes in pixels, independent of the template DPI so headers stay
// readable at low resolutions.
const (
	titleFontSize = 20
	smallFontSize = 12
)

// Faces bundles the two typefaces used on a template.
type Faces struct {
	Title font.Face
	Small font.Face
}

var faceCache = sync.OnceValues(loadFaces)

// LoadFaces returns the two template typefaces, parsing the embedded Go
// Regular font on first call and reusing the faces afterwards. On parse
// failure it falls back to the fixed 7x13 bitmap face and reports the error
// so callers can surface a capability warning; the fallback faces are still
// usable. The embedded font is immutable, so the cached result never changes.
func LoadFaces() (Faces, error) {
	return faceCache()
}

func loadFaces() (Faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Faces{Title: basicfont.Face7x13, Small: basicfont.Face7x13},
			fmt.Errorf("parse embedded font: %w", err)
	}

	title, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: titleFontSize, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return Faces{Title: basicfont.Face7x13, Small: basicfont.Face7x13},
			fmt.Errorf("create title face: %w", err)
	}

	small, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: smallFontSize, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return Faces{Title: title, Small: basicfont.Face7x13},
			fmt.Errorf("create small face: %w", err)
	}

	return Faces{Title: title, Small: small}, nil
}
