package rate

import (
	"context"
	"p2prates/internal/domain"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultStaleAfter = 30 * time.Second
	refreshTimeout    = 15 * time.Second
	refreshKey        = "refresh"
	forceRefreshKey   = "force"
)

type cachedRates struct {
	pair      domain.RatePair
	fetchedAt time.Time // zero until the first successful computation
}

// Cache owns the current RatePair. A pair older than staleAfter is recomputed on read;
// a failed recomputation keeps the old pair.
type Cache struct {
	source     RateSource
	staleAfter time.Duration
	clock      clockwork.Clock

	current atomic.Pointer[cachedRates]
	group   singleflight.Group
	updates *Broadcaster[domain.RatePair]
}

// GetRates returns the cached pair when fresh, otherwise computes, stores and returns a new one.
// Concurrent stale readers share a single computation that outlives any one of them;
// a reader whose ctx ends first gets the current pair.
func (c *Cache) GetRates(ctx context.Context) domain.RatePair {
	entry := c.current.Load()
	if c.isFresh(entry) {
		return entry.pair
	}

	pair, err := c.refresh(ctx, refreshKey)
	if err != nil {
		logrus.WithError(err).WithField("source", c.source.Name()).Warn("Rate refresh failed, serving stale rates")
		return c.current.Load().pair
	}
	return pair
}

// ForceRefresh recomputes the pair in the background regardless of its age.
// Completion is observable through Subscribe or a later GetRates.
func (c *Cache) ForceRefresh(ctx context.Context) {
	go func() {
		if _, err := c.refresh(context.WithoutCancel(ctx), forceRefreshKey); err != nil {
			logrus.WithError(err).WithField("source", c.source.Name()).Warn("Forced rate refresh failed")
		}
	}()
}

// Current returns the cached pair without triggering a refresh.
func (c *Cache) Current() domain.RatePair {
	return c.current.Load().pair
}

func (c *Cache) IsStale() bool {
	return !c.isFresh(c.current.Load())
}

// Subscribe delivers the current pair immediately and every replacement afterwards.
func (c *Cache) Subscribe() (<-chan domain.RatePair, func()) {
	return c.updates.Subscribe()
}

func (c *Cache) StaleAfter() time.Duration { return c.staleAfter }

func (c *Cache) refresh(ctx context.Context, key string) (domain.RatePair, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		pair, err := c.source.ComputeRates(computeCtx)
		if err != nil {
			return nil, err
		}
		c.store(pair)
		logrus.WithFields(logrus.Fields{
			"source": pair.Source,
			"buy":    pair.BuyPrice.String(),
			"sell":   pair.SellPrice.String(),
			"avg":    pair.AvgPrice.String(),
		}).Info("Rates updated")
		return pair, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.RatePair{}, res.Err
		}
		return res.Val.(domain.RatePair), nil
	case <-ctx.Done():
		return domain.RatePair{}, ctx.Err()
	}
}

func (c *Cache) store(pair domain.RatePair) {
	c.current.Store(&cachedRates{pair: pair, fetchedAt: c.clock.Now()})
	c.updates.Publish(pair)
}

func (c *Cache) isFresh(entry *cachedRates) bool {
	if entry.fetchedAt.IsZero() {
		return false
	}
	return c.clock.Since(entry.fetchedAt) <= c.staleAfter
}

// NewCache starts in the STALE state holding the source's fallback pair.
func NewCache(source RateSource, staleAfter time.Duration, clock clockwork.Clock) *Cache {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	c := &Cache{
		source:     source,
		staleAfter: staleAfter,
		clock:      clock,
		updates:    NewBroadcaster[domain.RatePair](),
	}
	fallback := source.Fallback()
	c.current.Store(&cachedRates{pair: fallback})
	c.updates.Publish(fallback)
	return c
}
