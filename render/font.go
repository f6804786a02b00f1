package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Face sizes used by the layouts, in points at 72 DPI (1pt = 1px).
const (
	timeFontSize  = 12
	bodyFontSize  = 8
	labelFontSize = 7
)

// fontSet holds the faces a Bitmap renderer draws with. Loaded once at
// construction and read-only afterward, so concurrent renders on different
// renderer instances stay safe.
type fontSet struct {
	time  font.Face
	body  font.Face
	label font.Face
}

// loadFontSet parses ttf and builds one face per layout size. A nil ttf
// loads the bundled bold face.
func loadFontSet(ttf []byte) (*fontSet, error) {
	if ttf == nil {
		ttf = gobold.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	fs := &fontSet{}
	for _, f := range []struct {
		size int
		dst  *font.Face
	}{
		{timeFontSize, &fs.time},
		{bodyFontSize, &fs.body},
		{labelFontSize, &fs.label},
	} {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    float64(f.size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("render: build %dpt face: %w", f.size, err)
		}
		*f.dst = face
	}
	return fs, nil
}

// loadFontFile reads a TrueType/OpenType file from disk.
func loadFontFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read font %s: %w", path, err)
	}
	return b, nil
}
