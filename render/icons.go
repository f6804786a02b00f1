package render

import "github.com/ulfmagnetics/trix-hub/display"

// Weather icons are 12x12 pixel art drawn directly onto the panel canvas at
// an offset. Geometry is hand-placed per condition; anything unrecognized
// falls back to the cloud.

// IconSize is the square edge of a weather icon in pixels.
const IconSize = 12

// drawIcon paints the icon for cond with its top-left corner at (ox, oy).
func drawIcon(g *Grid, cond display.Condition, ox, oy int) {
	switch cond {
	case display.ConditionSunny:
		drawSunnyIcon(g, ox, oy)
	case display.ConditionPartlyCloudy:
		drawPartlyCloudyIcon(g, ox, oy)
	case display.ConditionRainy:
		drawRainyIcon(g, ox, oy)
	case display.ConditionSnowy:
		drawSnowyIcon(g, ox, oy)
	case display.ConditionThunderstorm:
		drawThunderstormIcon(g, ox, oy)
	case display.ConditionWindy:
		drawWindyIcon(g, ox, oy)
	case display.ConditionError:
		drawErrorIcon(g, ox, oy)
	default:
		drawCloudyIcon(g, ox, oy)
	}
}

func drawSunnyIcon(g *Grid, ox, oy int) {
	fillEllipse(g, ox+3, oy+3, ox+9, oy+9, RGB{255, 255, 0})

	ray := RGB{255, 200, 0}
	for _, p := range [][2]int{{1, 1}, {10, 1}, {1, 10}, {10, 10}, {6, 0}, {0, 6}, {11, 6}, {6, 11}} {
		g.SetRGB(ox+p[0], oy+p[1], ray)
	}
}

func drawPartlyCloudyIcon(g *Grid, ox, oy int) {
	// Sun top-left, small cloud bottom-right.
	fillEllipse(g, ox+1, oy+1, ox+6, oy+6, RGB{255, 255, 0})
	cloud := RGB{200, 200, 200}
	fillEllipse(g, ox+5, oy+6, ox+10, oy+10, cloud)
	fillEllipse(g, ox+6, oy+7, ox+11, oy+11, cloud)
}

func drawCloudyIcon(g *Grid, ox, oy int) {
	cloud := RGB{180, 180, 180}
	fillEllipse(g, ox+1, oy+4, ox+7, oy+10, cloud)
	fillEllipse(g, ox+5, oy+3, ox+11, oy+9, cloud)
	fillEllipse(g, ox+3, oy+5, ox+9, oy+11, cloud)
}

func drawRainyIcon(g *Grid, ox, oy int) {
	cloud := RGB{160, 160, 160}
	fillEllipse(g, ox+1, oy+1, ox+7, oy+5, cloud)
	fillEllipse(g, ox+4, oy+2, ox+10, oy+6, cloud)

	rain := RGB{100, 150, 255}
	drawLine(g, ox+2, oy+7, ox+2, oy+10, rain)
	drawLine(g, ox+5, oy+8, ox+5, oy+11, rain)
	drawLine(g, ox+8, oy+7, ox+8, oy+10, rain)
}

func drawSnowyIcon(g *Grid, ox, oy int) {
	cloud := RGB{180, 180, 180}
	fillEllipse(g, ox+1, oy+1, ox+7, oy+5, cloud)
	fillEllipse(g, ox+4, oy+2, ox+10, oy+6, cloud)

	snow := White
	for _, p := range [][2]int{
		{2, 8}, {1, 9}, {3, 9},
		{6, 9}, {5, 10}, {7, 10},
		{9, 8}, {8, 9}, {10, 9},
	} {
		g.SetRGB(ox+p[0], oy+p[1], snow)
	}
}

func drawThunderstormIcon(g *Grid, ox, oy int) {
	cloud := RGB{120, 120, 120}
	fillEllipse(g, ox+1, oy+1, ox+7, oy+5, cloud)
	fillEllipse(g, ox+4, oy+2, ox+10, oy+6, cloud)

	bolt := RGB{255, 255, 0}
	drawLine(g, ox+6, oy+6, ox+5, oy+8, bolt)
	drawLine(g, ox+5, oy+8, ox+7, oy+9, bolt)
	drawLine(g, ox+7, oy+9, ox+5, oy+11, bolt)
}

func drawWindyIcon(g *Grid, ox, oy int) {
	wind := RGB{200, 200, 200}
	drawLine(g, ox+1, oy+3, ox+10, oy+3, wind)
	drawLine(g, ox+10, oy+3, ox+11, oy+4, wind)
	drawLine(g, ox+0, oy+6, ox+9, oy+6, wind)
	drawLine(g, ox+9, oy+6, ox+10, oy+7, wind)
	drawLine(g, ox+2, oy+9, ox+11, oy+9, wind)
}

func drawErrorIcon(g *Grid, ox, oy int) {
	drawThickLine(g, ox+2, oy+2, ox+10, oy+10, Red)
	drawThickLine(g, ox+10, oy+2, ox+2, oy+10, Red)
}
