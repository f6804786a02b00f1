package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 32}, {64, 0}, {-1, 32}, {64, -4}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1], Black); err == nil {
			t.Errorf("NewGrid(%d, %d) succeeded, want error", dims[0], dims[1])
		}
	}
}

func TestGridFillAndReadback(t *testing.T) {
	g, err := NewGrid(4, 3, RGB{10, 20, 30})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := g.RGBAt(x, y); got != (RGB{10, 20, 30}) {
				t.Fatalf("pixel (%d,%d) = %v after fill", x, y, got)
			}
		}
	}

	g.SetRGB(2, 1, Red)
	if got := g.RGBAt(2, 1); got != Red {
		t.Fatalf("pixel (2,1) = %v, want red", got)
	}
	if got := g.RGBAt(1, 1); got == Red {
		t.Fatal("neighboring pixel changed")
	}
}

func TestGridClipsOutOfBounds(t *testing.T) {
	g, _ := NewGrid(2, 2, White)

	// Writes off the canvas are dropped, reads come back black.
	g.SetRGB(-1, 0, Red)
	g.SetRGB(0, -1, Red)
	g.SetRGB(2, 0, Red)
	g.SetRGB(0, 2, Red)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := g.RGBAt(x, y); got != White {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
	if got := g.RGBAt(-1, 5); got != Black {
		t.Fatalf("out-of-bounds read = %v, want black", got)
	}
}

func TestGridBytesPacking(t *testing.T) {
	g, _ := NewGrid(2, 2, Black)
	g.SetRGB(1, 0, RGB{1, 2, 3})
	g.SetRGB(0, 1, RGB{4, 5, 6})

	want := []byte{
		0, 0, 0, 1, 2, 3,
		4, 5, 6, 0, 0, 0,
	}
	if got := g.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}

	// Bytes returns a fresh slice each call.
	b := g.Bytes()
	b[0] = 99
	if g.RGBAt(0, 0) != Black {
		t.Fatal("mutating the returned slice changed the grid")
	}
}

func TestGridAsDrawImage(t *testing.T) {
	g, _ := NewGrid(4, 4, Black)
	if got := g.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Fatalf("Bounds() = %v", got)
	}

	src := image.NewUniform(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	draw.Draw(g, image.Rect(1, 1, 3, 3), src, image.Point{}, draw.Src)

	if got := g.RGBAt(1, 1); got != (RGB{200, 100, 50}) {
		t.Fatalf("pixel (1,1) = %v after draw.Draw", got)
	}
	if got := g.RGBAt(0, 0); got != Black {
		t.Fatalf("pixel (0,0) = %v, want untouched black", got)
	}

	r, gr, b, a := g.At(1, 1).RGBA()
	if r>>8 != 200 || gr>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Fatalf("At(1,1) = %d,%d,%d,%d", r>>8, gr>>8, b>>8, a>>8)
	}

	// Fully transparent source pixels leave the grid alone.
	g.Set(0, 0, color.RGBA{R: 255, A: 0})
	if got := g.RGBAt(0, 0); got != Black {
		t.Fatalf("transparent Set changed pixel to %v", got)
	}
}
