package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ulfmagnetics/trix-hub/display"
)

// fakeSource counts fetches and returns a distinct payload per fetch so
// tests can tell a cache hit from a refetch.
type fakeSource struct {
	ttl     time.Duration
	fetches int
	err     error
}

func (s *fakeSource) FetchData(ctx context.Context) (display.Data, error) {
	s.fetches++
	if s.err != nil {
		return display.Data{}, s.err
	}
	return display.Data{
		Content: display.TimeContent{Time24: fmt.Sprintf("fetch-%d", s.fetches)},
	}, nil
}

func (s *fakeSource) CacheDuration() time.Duration { return s.ttl }

// fakeClock is an advanceable wall clock.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func tag(t *testing.T, d display.Data) string {
	t.Helper()
	tc, ok := d.Content.(display.TimeContent)
	if !ok {
		t.Fatalf("expected TimeContent, got %T", d.Content)
	}
	return tc.Time24
}

func TestGetDataReturnsCachedWithinDuration(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	src := &fakeSource{ttl: 60 * time.Second}
	p := New(src, WithClock(clock.Now))

	first, err := p.GetData(context.Background())
	if err != nil {
		t.Fatalf("first GetData: %v", err)
	}

	clock.Advance(30 * time.Second)
	second, err := p.GetData(context.Background())
	if err != nil {
		t.Fatalf("second GetData: %v", err)
	}

	if tag(t, first) != tag(t, second) {
		t.Fatalf("expected cached data, got %q then %q", tag(t, first), tag(t, second))
	}
	if src.fetches != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", src.fetches)
	}
}

func TestGetDataRefetchesAfterExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	src := &fakeSource{ttl: 60 * time.Second}
	p := New(src, WithClock(clock.Now))

	first, _ := p.GetData(context.Background())
	clock.Advance(61 * time.Second)
	second, err := p.GetData(context.Background())
	if err != nil {
		t.Fatalf("GetData after expiry: %v", err)
	}

	if tag(t, first) == tag(t, second) {
		t.Fatalf("expected fresh data after expiry, still got %q", tag(t, first))
	}
	if src.fetches != 2 {
		t.Fatalf("expected 2 fetches, got %d", src.fetches)
	}
}

func TestZeroCacheDurationAlwaysFetches(t *testing.T) {
	src := &fakeSource{ttl: 0}
	p := New(src)

	for i := 0; i < 3; i++ {
		if _, err := p.GetData(context.Background()); err != nil {
			t.Fatalf("GetData %d: %v", i, err)
		}
	}
	if src.fetches != 3 {
		t.Fatalf("expected 3 fetches with zero ttl, got %d", src.fetches)
	}
	if _, ok := p.Cached(); ok {
		t.Fatal("zero ttl should not populate the cache")
	}
}

func TestFetchFailurePreservesCachedData(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	src := &fakeSource{ttl: 60 * time.Second}
	p := New(src, WithClock(clock.Now))

	good, err := p.GetData(context.Background())
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}

	clock.Advance(2 * time.Minute)
	src.err = errors.New("source down")
	if _, err := p.GetData(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	} else if errors.Is(err, ErrNoData) {
		t.Fatalf("stale data exists, error should not be ErrNoData: %v", err)
	}

	cached, ok := p.Cached()
	if !ok {
		t.Fatal("cached data should survive a failed fetch")
	}
	if tag(t, cached) != tag(t, good) {
		t.Fatalf("cached data changed: %q -> %q", tag(t, good), tag(t, cached))
	}
}

func TestFirstFetchFailureIsNoData(t *testing.T) {
	src := &fakeSource{ttl: time.Minute, err: errors.New("source down")}
	p := New(src)

	_, err := p.GetData(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, ok := p.Cached(); ok {
		t.Fatal("no data should be cached after a failed first fetch")
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	src := &fakeSource{ttl: time.Hour}
	p := New(src, WithClock(clock.Now))

	p.GetData(context.Background())
	refreshed, err := p.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if src.fetches != 2 {
		t.Fatalf("expected Refresh to fetch, got %d fetches", src.fetches)
	}
	if got := tag(t, refreshed); got != "fetch-2" {
		t.Fatalf("expected fresh payload, got %q", got)
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	src := &fakeSource{ttl: time.Hour}
	p := New(src)

	p.GetData(context.Background())
	p.ClearCache()
	if _, ok := p.Cached(); ok {
		t.Fatal("ClearCache left data behind")
	}
	p.GetData(context.Background())
	if src.fetches != 2 {
		t.Fatalf("expected refetch after ClearCache, got %d fetches", src.fetches)
	}
}
