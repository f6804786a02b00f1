// Package provider fetches display.Data from sources and decides how long a
// fetch stays valid. A Source knows how to get the data; the Provider wraps
// it with the time-based cache every caller goes through.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ulfmagnetics/trix-hub/display"
)

// ErrNoData marks the "no data yet" condition: the first fetch failed and
// there is nothing cached to fall back on.
var ErrNoData = errors.New("no data fetched yet")

// Source produces display.Data on demand. FetchData must be idempotent and
// free of side effects beyond producing the data; CacheDuration reports how
// long a result stays fresh. A zero duration means every call refetches.
type Source interface {
	FetchData(ctx context.Context) (display.Data, error)
	CacheDuration() time.Duration
}

// Provider wraps a Source with its cache entry. A Provider instance belongs
// to a single goroutine: calls are totally ordered by call sequence and the
// freshness check is not guarded internally. Callers that need concurrent
// access must serialize it themselves.
type Provider struct {
	src       Source
	clock     func() time.Time
	cached    display.Data
	fetchedAt time.Time
	hasCache  bool
}

// ProviderOption configures New.
type ProviderOption func(*Provider)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock func() time.Time) ProviderOption {
	return func(p *Provider) { p.clock = clock }
}

// New wraps src with an empty cache.
func New(src Source, opts ...ProviderOption) *Provider {
	p := &Provider{src: src, clock: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetData returns the cached data while it is fresh, otherwise fetches.
// A failed fetch surfaces the error and leaves any cached value untouched;
// stale data stays reachable through Cached so an outer loop can keep
// showing the last good frame.
func (p *Provider) GetData(ctx context.Context) (display.Data, error) {
	ttl := p.src.CacheDuration()
	if p.hasCache && ttl > 0 && p.clock().Sub(p.fetchedAt) < ttl {
		return p.cached, nil
	}
	return p.fetch(ctx, ttl)
}

// Refresh fetches unconditionally, bypassing the cache.
func (p *Provider) Refresh(ctx context.Context) (display.Data, error) {
	return p.fetch(ctx, p.src.CacheDuration())
}

func (p *Provider) fetch(ctx context.Context, ttl time.Duration) (display.Data, error) {
	d, err := p.src.FetchData(ctx)
	if err != nil {
		if !p.hasCache {
			// Nothing to fall back on; callers can match ErrNoData to
			// distinguish this from a transient miss with stale data.
			return display.Data{}, fmt.Errorf("provider fetch: %w", errors.Join(ErrNoData, err))
		}
		return display.Data{}, fmt.Errorf("provider fetch: %w", err)
	}
	if ttl > 0 {
		p.cached = d
		p.fetchedAt = p.clock()
		p.hasCache = true
	}
	return d, nil
}

// Cached returns the last successfully fetched data, fresh or stale.
func (p *Provider) Cached() (display.Data, bool) {
	return p.cached, p.hasCache
}

// ClearCache forces the next GetData to fetch.
func (p *Provider) ClearCache() {
	p.cached = display.Data{}
	p.hasCache = false
}
