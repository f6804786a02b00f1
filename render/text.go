package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text layout helpers. All positions are integer pixels; y is the top edge of
// the line, not the baseline, so callers can lay out rows the way the panel
// layouts think about them.

// textWidth measures the advance width of s in whole pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// centerX returns the x that centers s inside a container of the given width.
func centerX(face font.Face, s string, containerWidth int) int {
	return (containerWidth - textWidth(face, s)) / 2
}

// rightX returns the x that right-aligns s against rightEdge (exclusive).
func rightX(face font.Face, s string, rightEdge int) int {
	return rightEdge - textWidth(face, s)
}

// drawText paints s with its top-left corner at (x, y).
func drawText(g *Grid, face font.Face, c RGB, x, y int, s string) {
	d := font.Drawer{
		Dst:  g,
		Src:  image.NewUniform(rgba(c)),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func rgba(c RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
