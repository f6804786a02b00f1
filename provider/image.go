package provider

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Decoders the directory scan accepts. bmp and webp come from x/image;
	// the rest are stdlib.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ulfmagnetics/trix-hub/display"
)

// imageExtensions lists the decodable file extensions, lowercase.
var imageExtensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

// ImageSource cycles through the images in a directory: list, shuffle,
// iterate, then relist and reshuffle once the cycle is exhausted. Zero cache
// duration so every fetch advances to the next image.
type ImageSource struct {
	dir   string
	rng   *rand.Rand
	names []string
	index int
}

// ImageOption configures NewImageSource.
type ImageOption func(*ImageSource)

// WithImageRand replaces the shuffle source, mainly for tests.
func WithImageRand(rng *rand.Rand) ImageOption {
	return func(s *ImageSource) { s.rng = rng }
}

// NewImageSource builds a source cycling the images in dir.
func NewImageSource(dir string, opts ...ImageOption) *ImageSource {
	s := &ImageSource{
		dir: dir,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ImageSource) CacheDuration() time.Duration { return 0 }

// FetchData decodes the next image in the cycle. An empty directory and a
// failed decode are both fetch errors; the cycle index has already advanced,
// so one bad file never wedges the rotation.
func (s *ImageSource) FetchData(ctx context.Context) (display.Data, error) {
	if s.index >= len(s.names) {
		if err := s.refresh(); err != nil {
			return display.Data{}, err
		}
	}
	if len(s.names) == 0 {
		return display.Data{}, fmt.Errorf("images: no images in %s", s.dir)
	}

	name := s.names[s.index]
	s.index++

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return display.Data{}, fmt.Errorf("images: open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return display.Data{}, fmt.Errorf("images: decode %s: %w", name, err)
	}

	return display.Data{
		Content: display.ImageContent{
			Image: img,
			Name:  name,
			Index: s.index,
			Total: len(s.names),
		},
		FetchedAt: time.Now(),
		Meta: display.Metadata{
			Priority:   "normal",
			DisplayFor: 30 * time.Second,
		},
	}, nil
}

// refresh relists the directory and reshuffles the cycle.
func (s *ImageSource) refresh() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("images: list %s: %w", s.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	s.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	s.names = names
	s.index = 0
	return nil
}
