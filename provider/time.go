package provider

import (
	"context"
	"time"

	"github.com/ulfmagnetics/trix-hub/display"
)

// timeCacheDuration is deliberately coarse: the panel shows minutes, so
// second-by-second refetches buy nothing.
const timeCacheDuration = 30 * time.Second

// TimeSource produces the current wall-clock time as display content. The
// fetch is a pure computation and never fails.
type TimeSource struct {
	now func() time.Time
}

// TimeOption configures NewTimeSource.
type TimeOption func(*TimeSource)

// WithTimeClock replaces the wall clock, mainly for tests.
func WithTimeClock(now func() time.Time) TimeOption {
	return func(s *TimeSource) { s.now = now }
}

// NewTimeSource builds a time source reading the system clock.
func NewTimeSource(opts ...TimeOption) *TimeSource {
	s := &TimeSource{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchData snapshots the current instant in every format a renderer needs.
func (s *TimeSource) FetchData(ctx context.Context) (display.Data, error) {
	now := s.now()
	return display.Data{
		Content: display.TimeContent{
			Now:          now,
			Time12:       now.Format("03:04 PM"),
			Time24:       now.Format("15:04"),
			Date:         now.Format("2006-01-02"),
			DateShort:    now.Format("01/02"),
			DateUS:       now.Format("01/02/2006"),
			Weekday:      now.Format("Monday"),
			WeekdayShort: now.Format("Mon"),
		},
		FetchedAt: now,
		Meta: display.Metadata{
			Priority:   "normal",
			DisplayFor: 30 * time.Second,
		},
	}, nil
}

func (s *TimeSource) CacheDuration() time.Duration { return timeCacheDuration }
