// Package render turns display.Data into the canonical pixel grid for the
// LED matrix. The Bitmap renderer owns layout; Grid is the fixed-size RGB
// framebuffer every other output format derives from.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ulfmagnetics/trix-hub/display"
)

// Renderer converts display.Data into a target-specific output. Concrete
// renderers fix their dimensions at construction and must produce the same
// output for the same Data on every call.
type Renderer[O any] interface {
	Render(d display.Data) O
}

// RGB is one pixel. Channels are full-range 0-255.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Grey  = RGB{128, 128, 128}
)

// Grid is a fixed-size framebuffer with row-major RGB storage. It implements
// draw.Image so the x/image font drawer and stdlib image code can paint
// straight onto it.
type Grid struct {
	width, height int
	pix           []RGB
}

// NewGrid allocates a width x height grid filled with the background color.
func NewGrid(width, height int, background RGB) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid grid dimensions %dx%d", width, height)
	}
	g := &Grid{width: width, height: height, pix: make([]RGB, width*height)}
	g.Fill(background)
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// RGBAt returns the pixel at (x, y). Out-of-bounds reads return black.
func (g *Grid) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Black
	}
	return g.pix[y*g.width+x]
}

// SetRGB writes the pixel at (x, y). Out-of-bounds writes are dropped, which
// lets drawing code clip against the canvas edge for free.
func (g *Grid) SetRGB(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pix[y*g.width+x] = c
}

// Fill paints every pixel with c.
func (g *Grid) Fill(c RGB) {
	for i := range g.pix {
		g.pix[i] = c
	}
}

// Bytes returns the grid as packed row-major RGB bytes, 3 per pixel. The
// slice is freshly allocated; the caller owns it.
func (g *Grid) Bytes() []byte {
	out := make([]byte, 0, len(g.pix)*3)
	for _, p := range g.pix {
		out = append(out, p.R, p.G, p.B)
	}
	return out
}

// image.Image / draw.Image

func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

func (g *Grid) At(x, y int) color.Color {
	p := g.RGBAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

func (g *Grid) Set(x, y int, c color.Color) {
	r, gr, b, a := c.RGBA()
	if a == 0 {
		return
	}
	g.SetRGB(x, y, RGB{uint8(r >> 8), uint8(gr >> 8), uint8(b >> 8)})
}
