package provider

import (
	"context"
	"time"

	"github.com/ulfmagnetics/trix-hub/display"
)

// StaticSource serves a fixed payload. Used for content kinds that have no
// live feed wired yet (demo arrivals) and as a fake in tests.
type StaticSource struct {
	data display.Data
	ttl  time.Duration
}

// NewStaticSource wraps d in a source with the given cache duration.
func NewStaticSource(d display.Data, ttl time.Duration) *StaticSource {
	return &StaticSource{data: d, ttl: ttl}
}

func (s *StaticSource) FetchData(ctx context.Context) (display.Data, error) {
	return s.data, nil
}

func (s *StaticSource) CacheDuration() time.Duration { return s.ttl }
