package render

// Wind direction arrows, weathervane style: the arrow points the way the
// wind is coming from, so a north wind draws an up arrow. Drawn as 5x5
// pixel art because the panel faces have no reliable arrow glyphs at 8pt.

const arrowSize = 5

type heading int

const (
	headingN heading = iota
	headingNE
	headingE
	headingSE
	headingS
	headingSW
	headingW
	headingNW
)

// headingFor maps meteorological degrees (0 = from north) to one of eight
// headings using 45-degree sectors centered on the compass points.
func headingFor(degrees int) heading {
	d := float64(((degrees % 360) + 360) % 360)
	switch {
	case d < 22.5 || d >= 337.5:
		return headingN
	case d < 67.5:
		return headingNE
	case d < 112.5:
		return headingE
	case d < 157.5:
		return headingSE
	case d < 202.5:
		return headingS
	case d < 247.5:
		return headingSW
	case d < 292.5:
		return headingW
	default:
		return headingNW
	}
}

// drawWindArrow paints the arrow for degrees with its top-left corner at
// (ox, oy) and returns the width consumed.
func drawWindArrow(g *Grid, ox, oy, degrees int, c RGB) int {
	type seg struct{ x0, y0, x1, y1 int }
	var segs []seg
	switch headingFor(degrees) {
	case headingN:
		segs = []seg{{2, 0, 2, 4}, {0, 2, 2, 0}, {4, 2, 2, 0}}
	case headingNE:
		segs = []seg{{0, 4, 4, 0}, {1, 0, 4, 0}, {4, 3, 4, 0}}
	case headingE:
		segs = []seg{{0, 2, 4, 2}, {2, 0, 4, 2}, {2, 4, 4, 2}}
	case headingSE:
		segs = []seg{{0, 0, 4, 4}, {1, 4, 4, 4}, {4, 1, 4, 4}}
	case headingS:
		segs = []seg{{2, 0, 2, 4}, {0, 2, 2, 4}, {4, 2, 2, 4}}
	case headingSW:
		segs = []seg{{4, 0, 0, 4}, {3, 4, 0, 4}, {0, 1, 0, 4}}
	case headingW:
		segs = []seg{{0, 2, 4, 2}, {2, 0, 0, 2}, {2, 4, 0, 2}}
	case headingNW:
		segs = []seg{{4, 4, 0, 0}, {3, 0, 0, 0}, {0, 3, 0, 0}}
	}
	for _, s := range segs {
		drawLine(g, ox+s.x0, oy+s.y0, ox+s.x1, oy+s.y1, c)
	}
	return arrowSize
}
