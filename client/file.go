package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/ulfmagnetics/trix-hub/render"
)

// File is the hardware-free Sink: frames land as timestamped BMP files in a
// directory instead of on a panel. Providers and renderers cannot tell the
// difference.
type File struct {
	dir string
	now func() time.Time
}

// FileOption configures NewFile.
type FileOption func(*File)

// WithFileClock replaces the wall clock used for file names, for tests.
func WithFileClock(now func() time.Time) FileOption {
	return func(f *File) { f.now = now }
}

// NewFile builds a file sink writing into dir, creating it if needed.
func NewFile(dir string, opts ...FileOption) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("client: create output dir: %w", err)
	}
	f := &File{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// PostBitmap writes the grid as matrix_YYYYMMDD_HHMMSS.bmp.
func (f *File) PostBitmap(ctx context.Context, g *render.Grid) error {
	name := fmt.Sprintf("matrix_%s.bmp", f.now().Format("20060102_150405"))
	path := filepath.Join(f.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("client: create %s: %w", path, err)
	}
	if err := bmp.Encode(out, g); err != nil {
		out.Close()
		return fmt.Errorf("client: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("client: close %s: %w", path, err)
	}
	return nil
}
