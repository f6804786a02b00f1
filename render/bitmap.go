package render

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ulfmagnetics/trix-hub/display"
)

// Bitmap renders display.Data onto the authoritative pixel grid for the LED
// matrix. Width, height, fonts, and the background color are fixed at
// construction; identical Data always produces an identical grid.
type Bitmap struct {
	width, height int
	background    RGB
	clock24       bool
	fonts         *fontSet
}

type bitmapOptions struct {
	background RGB
	clock24    bool
	fontTTF    []byte
	fontPath   string
}

// BitmapOption configures NewBitmap.
type BitmapOption func(*bitmapOptions)

// WithBackground sets the canvas color used for padding and the
// unknown-content fallback. Defaults to black.
func WithBackground(c RGB) BitmapOption {
	return func(o *bitmapOptions) { o.background = c }
}

// With24HourClock draws the 24-hour time string on the clock face instead
// of the 12-hour one.
func With24HourClock() BitmapOption {
	return func(o *bitmapOptions) { o.clock24 = true }
}

// WithFontBytes renders text with the given TrueType/OpenType font instead
// of the bundled face.
func WithFontBytes(ttf []byte) BitmapOption {
	return func(o *bitmapOptions) { o.fontTTF = ttf }
}

// WithFontPath loads the render font from disk at construction.
func WithFontPath(path string) BitmapOption {
	return func(o *bitmapOptions) { o.fontPath = path }
}

// NewBitmap builds a renderer for a width x height panel. Bad dimensions and
// font problems are construction errors; Render itself cannot fail.
func NewBitmap(width, height int, opts ...BitmapOption) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid bitmap dimensions %dx%d", width, height)
	}
	o := bitmapOptions{background: Black}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fontPath != "" {
		ttf, err := loadFontFile(o.fontPath)
		if err != nil {
			return nil, err
		}
		o.fontTTF = ttf
	}
	fonts, err := loadFontSet(o.fontTTF)
	if err != nil {
		return nil, err
	}
	return &Bitmap{
		width:      width,
		height:     height,
		background: o.background,
		clock24:    o.clock24,
		fonts:      fonts,
	}, nil
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// Render maps the content variant to its layout routine. Unrecognized
// content yields a plain background canvas rather than an error, so an
// outdated renderer never takes the pipeline down.
func (b *Bitmap) Render(d display.Data) *Grid {
	g := b.canvas()
	switch c := d.Content.(type) {
	case display.TimeContent:
		b.drawTime(g, c)
	case display.WeatherContent:
		b.drawWeather(g, c)
	case display.ArrivalsContent:
		b.drawArrivals(g, c)
	case display.ImageContent:
		b.drawImage(g, c)
	}
	return g
}

func (b *Bitmap) canvas() *Grid {
	// Dimensions were validated in NewBitmap.
	g, _ := NewGrid(b.width, b.height, b.background)
	return g
}

// rainbow is the ROYGBIV cycle the clock digits are painted with.
var rainbow = []RGB{
	{255, 0, 0},
	{255, 127, 0},
	{255, 255, 0},
	{0, 255, 0},
	{0, 0, 255},
	{75, 0, 130},
	{148, 0, 211},
}

// drawTime lays out the clock face: 1px grey border, 2px padding, rainbow
// time near the top, grey US date bottom-right.
func (b *Bitmap) drawTime(g *Grid, tc display.TimeContent) {
	drawRectOutline(g, 0, 0, b.width-1, b.height-1, Grey)

	const (
		contentX = 3
		contentY = 3
	)
	contentWidth := b.width - 6
	contentRight := b.width - 3
	contentBottom := b.height - 3

	timeStr := tc.Time12
	if b.clock24 {
		timeStr = tc.Time24
	}
	if timeStr == "" {
		timeStr = "??:??"
	}

	timeX := contentX + centerX(b.fonts.time, timeStr, contentWidth)
	timeY := contentY + 2

	// One color per visible glyph; spaces advance the pen but not the cycle.
	dot := fixed.P(timeX, timeY+b.fonts.time.Metrics().Ascent.Ceil())
	colorIndex := 0
	for _, r := range timeStr {
		s := string(r)
		if r != ' ' {
			d := font.Drawer{
				Dst:  g,
				Src:  image.NewUniform(rgba(rainbow[colorIndex%len(rainbow)])),
				Face: b.fonts.time,
				Dot:  dot,
			}
			d.DrawString(s)
			colorIndex++
		}
		dot.X += font.MeasureString(b.fonts.time, s)
	}

	if tc.DateUS != "" {
		dateX := rightX(b.fonts.body, tc.DateUS, contentRight)
		dateY := contentBottom - 10
		drawText(g, b.fonts.body, Grey, dateX, dateY, tc.DateUS)
	}
}

// Weather layout rows: icons 0-11, time labels from 12, stats from 22.
const (
	weatherIconY  = 0
	weatherLabelY = 12
	weatherStatsY = 22
)

// drawWeather lays out three forecast columns plus a stats row of
// temperature, color-coded AQI, and wind.
func (b *Bitmap) drawWeather(g *Grid, wc display.WeatherContent) {
	// Icon columns centered in thirds of a 64px panel.
	iconX := [3]int{5, 26, 47}
	conditions := [3]display.Condition{
		wc.Current.Condition,
		wc.Forecast1.Condition,
		wc.Forecast2.Condition,
	}
	currentLabel := wc.Current.TimeLabel
	if currentLabel == "" {
		currentLabel = "Now"
	}
	labels := [3]string{currentLabel, wc.Forecast1.TimeLabel, wc.Forecast2.TimeLabel}

	for i := 0; i < 3; i++ {
		drawIcon(g, conditions[i], iconX[i], weatherIconY)
		if labels[i] != "" {
			x := iconX[i] + centerX(b.fonts.label, labels[i], IconSize)
			drawText(g, b.fonts.label, White, x, weatherLabelY, labels[i])
		}
	}

	temp := fmt.Sprintf("%d°", wc.Current.Temperature)
	drawText(g, b.fonts.body, White, 2, weatherStatsY, temp)

	if wc.Current.AQI != nil {
		aqi := strconv.Itoa(*wc.Current.AQI)
		drawText(g, b.fonts.body, aqiColor(*wc.Current.AQI), centerX(b.fonts.body, aqi, b.width), weatherStatsY, aqi)
	}

	speed := strconv.Itoa(wc.Current.WindSpeed)
	windWidth := arrowSize + 1 + textWidth(b.fonts.body, speed)
	windX := b.width - windWidth - 2
	drawWindArrow(g, windX, weatherStatsY+2, wc.Current.WindDirection, White)
	drawText(g, b.fonts.body, White, windX+arrowSize+1, weatherStatsY, speed)
}

// aqiColor maps a US AQI value onto the standard band colors.
func aqiColor(aqi int) RGB {
	switch {
	case aqi <= 50:
		return RGB{0, 228, 0}
	case aqi <= 100:
		return RGB{255, 255, 0}
	case aqi <= 150:
		return RGB{255, 126, 0}
	case aqi <= 200:
		return RGB{255, 0, 0}
	case aqi <= 300:
		return RGB{143, 63, 151}
	default:
		return RGB{126, 0, 35}
	}
}

// drawImage blits a decoded image onto the panel. An image already at panel
// size copies straight through; anything else scales to cover the panel
// preserving aspect ratio, then center-crops.
func (b *Bitmap) drawImage(g *Grid, ic display.ImageContent) {
	img := ic.Image
	if img == nil {
		return
	}
	sb := img.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW <= 0 || srcH <= 0 {
		return
	}
	if srcW == b.width && srcH == b.height {
		draw.Draw(g, g.Bounds(), img, sb.Min, draw.Src)
		return
	}

	var newW, newH int
	if srcW*b.height > srcH*b.width { // wider than the panel: fit height
		newH = b.height
		newW = (srcW*newH + srcH/2) / srcH
	} else {
		newW = b.width
		newH = (srcH*newW + srcW/2) / srcW
	}
	if newW < b.width {
		newW = b.width
	}
	if newH < b.height {
		newH = b.height
	}

	scaled := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, sb, xdraw.Src, nil)

	crop := image.Pt((newW-b.width)/2, (newH-b.height)/2)
	draw.Draw(g, g.Bounds(), scaled, crop, draw.Src)
}

const arrivalRowHeight = 8

var urgencyColors = map[display.Urgency]RGB{
	display.UrgencyUrgent: {255, 0, 0},
	display.UrgencySoon:   {255, 255, 0},
	display.UrgencyNormal: {0, 255, 0},
}

// drawArrivals lays out up to four arrival rows: route left, countdown
// right, colored by urgency, with "*" marking schedule-only estimates.
func (b *Bitmap) drawArrivals(g *Grid, ac display.ArrivalsContent) {
	if len(ac.Arrivals) == 0 {
		msg := "No arrivals"
		y := (b.height - b.fonts.body.Metrics().Height.Ceil()) / 2
		drawText(g, b.fonts.body, White, centerX(b.fonts.body, msg, b.width), y, msg)
		return
	}

	maxRows := b.height / arrivalRowHeight
	if maxRows > 4 {
		maxRows = 4
	}
	y := 0
	for i, a := range ac.Arrivals {
		if i >= maxRows {
			break
		}
		col, ok := urgencyColors[a.Urgency]
		if !ok {
			col = White
		}

		var countdown string
		switch {
		case a.Minutes <= 0:
			countdown = "NOW"
		case a.Minutes == 1:
			countdown = "1 min"
		default:
			countdown = fmt.Sprintf("%d mins", a.Minutes)
		}
		if a.Scheduled {
			countdown += "*"
		}

		drawText(g, b.fonts.body, col, 2, y, a.Route)
		drawText(g, b.fonts.body, col, rightX(b.fonts.body, countdown, b.width-2), y, countdown)
		y += arrivalRowHeight
	}
}
