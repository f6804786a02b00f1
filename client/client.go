// Package client delivers rendered pixel grids to the matrix display server.
// The HTTP client posts BMP frames to trix-server; the file client keeps the
// same contract but writes frames to disk for hardware-free runs.
package client

import (
	"context"
	"errors"

	"github.com/ulfmagnetics/trix-hub/render"
)

// ErrBadStatus wraps non-2xx responses from the display server.
var ErrBadStatus = errors.New("client: unexpected status")

// ErrSizeMismatch reports a grid whose dimensions do not match the target
// display. This is a wiring mistake, not a transient failure.
var ErrSizeMismatch = errors.New("client: grid size does not match display")

// Sink accepts rendered frames. A single delivery attempt per call; retry
// and backoff policy belongs to whatever loop drives the pipeline.
type Sink interface {
	PostBitmap(ctx context.Context, g *render.Grid) error
}
