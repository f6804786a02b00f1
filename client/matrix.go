package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/ulfmagnetics/trix-hub/render"
)

const (
	displayEndpoint = "/display"
	clearEndpoint   = "/clear"
)

// Matrix posts frames to a trix-server over HTTP as BMP-encoded images.
type Matrix struct {
	base          string
	width, height int
	httpc         *http.Client
}

// MatrixOption configures NewMatrix.
type MatrixOption func(*Matrix)

// WithTimeout sets the per-request timeout. Defaults to 5s.
func WithTimeout(d time.Duration) MatrixOption {
	return func(m *Matrix) { m.httpc.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) MatrixOption {
	return func(m *Matrix) { m.httpc = c }
}

// NewMatrix builds a client for the display server at base (e.g.
// "http://trix-server.local") driving a width x height panel.
func NewMatrix(base string, width, height int, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		base:   strings.TrimRight(base, "/"),
		width:  width,
		height: height,
		httpc:  &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PostBitmap BMP-encodes the grid and POSTs it to the display endpoint.
// One attempt, no retry; transport failures and non-200 responses come back
// as errors for the caller to act on.
func (m *Matrix) PostBitmap(ctx context.Context, g *render.Grid) error {
	if g.Width() != m.width || g.Height() != m.height {
		return fmt.Errorf("%w: got %dx%d, display is %dx%d",
			ErrSizeMismatch, g.Width(), g.Height(), m.width, m.height)
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, g); err != nil {
		return fmt.Errorf("client: encode bmp: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.base+displayEndpoint, &buf)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "image/bmp")

	resp, err := m.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: post bitmap: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}
	return nil
}

// Clear asks the display server to blank the panel.
func (m *Matrix) Clear(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.base+clearEndpoint, nil)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	resp, err := m.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: clear display: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}
	return nil
}

// Ping reports whether the display server answers at all. A 404 still
// counts: the server is up even if the root path isn't routed.
func (m *Matrix) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.base, nil)
	if err != nil {
		return false
	}
	resp, err := m.httpc.Do(req)
	if err != nil {
		return false
	}
	defer drain(resp)
	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNotFound
}

// drain empties and closes the body so connections get reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
