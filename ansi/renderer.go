// Package ansi renders display.Data as colored text for a terminal. It is a
// pixel-exact preview of the Bitmap renderer: every character cell carries
// two vertically stacked pixels via the lower-half-block glyph, with the
// background escape painting the upper pixel and the foreground escape the
// lower one.
package ansi

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/muesli/termenv"
	"github.com/zeebo/xxh3"

	"github.com/ulfmagnetics/trix-hub/display"
	"github.com/ulfmagnetics/trix-hub/render"
)

const (
	halfBlock = "▄" // lower half block
	reset     = "\x1b[0m"

	// Identical frames repeat for the whole provider cache window, so a
	// handful of encoded strings covers a rotation of providers.
	frameCacheSize = 32
)

// Mode selects how pixel colors are encoded. The renderer never inspects the
// environment itself; the entrypoint detects terminal capabilities once and
// passes the result in.
type Mode int

const (
	// ModeTrueColor emits 24-bit escape sequences, exact RGB passthrough.
	ModeTrueColor Mode = iota
	// Mode256 quantizes each pixel to the nearest xterm 256-color palette
	// entry. Deterministic, but only visually approximate.
	Mode256
)

// ParseMode reads a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return ModeTrueColor, nil
	case "256", "ansi256":
		return Mode256, nil
	default:
		return ModeTrueColor, fmt.Errorf("ansi: unknown color mode %q", s)
	}
}

// Renderer converts display.Data to a newline-joined string of half-block
// cells, one line per pair of pixel rows.
type Renderer struct {
	width, height int
	mode          Mode
	bitmap        *render.Bitmap
	cache         *lru.Cache[uint64, string]
}

type rendererOptions struct {
	mode       Mode
	bitmapOpts []render.BitmapOption
}

// Option configures NewRenderer.
type Option func(*rendererOptions)

// WithMode sets the color encoding mode. Defaults to ModeTrueColor.
func WithMode(m Mode) Option {
	return func(o *rendererOptions) { o.mode = m }
}

// WithBitmapOptions forwards options to the internal Bitmap renderer, e.g.
// a custom font or background.
func WithBitmapOptions(opts ...render.BitmapOption) Option {
	return func(o *rendererOptions) { o.bitmapOpts = append(o.bitmapOpts, opts...) }
}

// NewRenderer builds a preview renderer for a width x height pixel panel.
// Height must be even: each output line consumes two pixel rows. A zero
// width or height is legal and renders to the empty string; odd or negative
// dimensions are configuration errors.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("ansi: invalid dimensions %dx%d", width, height)
	}
	if height%2 != 0 {
		return nil, fmt.Errorf("ansi: height %d is odd, half-block cells need row pairs", height)
	}
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{width: width, height: height, mode: o.mode}
	if width > 0 && height > 0 {
		bitmap, err := render.NewBitmap(width, height, o.bitmapOpts...)
		if err != nil {
			return nil, err
		}
		r.bitmap = bitmap
		cache, err := lru.New[uint64, string](frameCacheSize)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}
	return r, nil
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// Render produces the terminal frame for d. Output has height/2 lines of
// width glyphs; every line ends with a reset so no color state leaks.
func (r *Renderer) Render(d display.Data) string {
	if r.bitmap == nil {
		return ""
	}
	return r.Encode(r.bitmap.Render(d))
}

// Encode converts an already-rendered grid into the half-block string. The
// bitmap render is deterministic, so encoded frames are cached by content
// digest; cached strings are immutable and safe to hand out repeatedly.
func (r *Renderer) Encode(g *render.Grid) string {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return ""
	}
	digest := xxh3.Hash(g.Bytes())
	if r.cache != nil {
		if s, ok := r.cache.Get(digest); ok {
			return s
		}
	}

	var sb strings.Builder
	height := g.Height()
	width := g.Width()
	for y := 0; y < height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := g.RGBAt(x, y)
			bottom := render.RGB{} // black when the pair is incomplete
			if y+1 < height {
				bottom = g.RGBAt(x, y+1)
			}
			sb.WriteString("\x1b[")
			sb.WriteString(r.colorSeq(top, true))
			sb.WriteString("m\x1b[")
			sb.WriteString(r.colorSeq(bottom, false))
			sb.WriteString("m")
			sb.WriteString(halfBlock)
		}
		sb.WriteString(reset)
	}

	s := sb.String()
	if r.cache != nil {
		r.cache.Add(digest, s)
	}
	return s
}

// colorSeq encodes one pixel as the parameter part of an SGR sequence,
// background for the upper pixel and foreground for the lower one.
func (r *Renderer) colorSeq(c render.RGB, bg bool) string {
	col := termenv.Color(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	if r.mode == Mode256 {
		col = termenv.ANSI256.Convert(col)
	}
	return col.Sequence(bg)
}
