package render

// Pixel-art drawing primitives. Icons and chrome on a 64x32 panel need exact
// pixel placement, so these work in integers with inclusive coordinates
// rather than going through an antialiased rasterizer.

// drawRectOutline draws a 1px rectangle outline with inclusive corners.
func drawRectOutline(g *Grid, x0, y0, x1, y1 int, c RGB) {
	for x := x0; x <= x1; x++ {
		g.SetRGB(x, y0, c)
		g.SetRGB(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		g.SetRGB(x0, y, c)
		g.SetRGB(x1, y, c)
	}
}

// drawLine draws a 1px line from (x0, y0) to (x1, y1) inclusive, Bresenham.
func drawLine(g *Grid, x0, y0, x1, y1 int, c RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.SetRGB(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawThickLine draws a line and a 1px-offset copy, approximating width 2.
func drawThickLine(g *Grid, x0, y0, x1, y1 int, c RGB) {
	drawLine(g, x0, y0, x1, y1, c)
	if abs(x1-x0) >= abs(y1-y0) {
		drawLine(g, x0, y0+1, x1, y1+1, c)
	} else {
		drawLine(g, x0+1, y0, x1+1, y1, c)
	}
}

// fillEllipse fills the ellipse inscribed in the inclusive box (x0,y0)-(x1,y1).
func fillEllipse(g *Grid, x0, y0, x1, y1 int, c RGB) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		drawLine(g, x0, y0, x1, y1, c)
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			if nx*nx+ny*ny <= 1.0 {
				g.SetRGB(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
