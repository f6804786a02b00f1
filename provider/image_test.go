package provider

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ulfmagnetics/trix-hub/display"
)

// writePNG drops a small solid-color image into dir.
func writePNG(t *testing.T, dir, name string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func imageDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, dir, "a.png", color.NRGBA{R: 255, A: 255})
	writePNG(t, dir, "b.png", color.NRGBA{G: 255, A: 255})
	writePNG(t, dir, "c.png", color.NRGBA{B: 255, A: 255})
	return dir
}

func fetchImage(t *testing.T, s *ImageSource) display.ImageContent {
	t.Helper()
	d, err := s.FetchData(context.Background())
	if err != nil {
		t.Fatalf("FetchData: %v", err)
	}
	ic, ok := d.Content.(display.ImageContent)
	if !ok {
		t.Fatalf("expected ImageContent, got %T", d.Content)
	}
	return ic
}

func TestImageSourceCyclesBeforeRepeating(t *testing.T) {
	dir := imageDir(t)
	s := NewImageSource(dir, WithImageRand(rand.New(rand.NewSource(1))))

	cycle := func() []string {
		var names []string
		for i := 0; i < 3; i++ {
			ic := fetchImage(t, s)
			if ic.Index != i+1 || ic.Total != 3 {
				t.Fatalf("position %d/%d, want %d/3", ic.Index, ic.Total, i+1)
			}
			if ic.Image == nil || ic.Image.Bounds().Dx() != 4 {
				t.Fatalf("image %q not decoded", ic.Name)
			}
			names = append(names, ic.Name)
		}
		sort.Strings(names)
		return names
	}

	want := []string{"a.png", "b.png", "c.png"}
	for round := 0; round < 2; round++ {
		got := cycle()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d served %v, want each of %v once", round, got, want)
			}
		}
	}
}

func TestImageSourceFiltersNonImages(t *testing.T) {
	dir := imageDir(t)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	s := NewImageSource(dir, WithImageRand(rand.New(rand.NewSource(1))))
	if ic := fetchImage(t, s); ic.Total != 3 {
		t.Fatalf("Total = %d, want 3 after filtering", ic.Total)
	}
}

func TestImageSourceEmptyDir(t *testing.T) {
	s := NewImageSource(t.TempDir())
	if _, err := s.FetchData(context.Background()); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestImageSourceMissingDir(t *testing.T) {
	s := NewImageSource(filepath.Join(t.TempDir(), "nope"))
	if _, err := s.FetchData(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestImageSourceBadFileDoesNotWedgeCycle(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "good.png", color.NRGBA{R: 255, A: 255})
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write bad.png: %v", err)
	}

	s := NewImageSource(dir, WithImageRand(rand.New(rand.NewSource(1))))
	var errs, oks int
	for i := 0; i < 2; i++ {
		if _, err := s.FetchData(context.Background()); err != nil {
			errs++
		} else {
			oks++
		}
	}
	if errs != 1 || oks != 1 {
		t.Fatalf("first cycle: %d errors, %d successes, want 1 and 1", errs, oks)
	}
}

func TestImageSourceNeverCaches(t *testing.T) {
	s := NewImageSource(imageDir(t))
	if got := s.CacheDuration(); got != 0 {
		t.Fatalf("CacheDuration = %v, want 0", got)
	}
	p := New(s)
	p.GetData(context.Background())
	if _, ok := p.Cached(); ok {
		t.Fatal("image fetches must not populate the provider cache")
	}
}
