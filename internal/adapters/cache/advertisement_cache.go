package cache

import (
	"fmt"
	"p2prates/internal/domain"
	"slices"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoAdvertisementCache keeps the last listings of each side for a short ttl.
type RistrettoAdvertisementCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewAdvertisementCache(maxItems int64, ttl time.Duration) (*RistrettoAdvertisementCache, error) {
	if maxItems <= 0 {
		maxItems = 16
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create advertisement cache failed: %w", err)
	}
	return &RistrettoAdvertisementCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoAdvertisementCache) Get(side domain.TradeSide) ([]domain.Advertisement, bool) {
	if v, ok := c.cache.Get(toKey(side)); ok {
		ads, ok := v.([]domain.Advertisement)
		return slices.Clone(ads), ok
	}
	return nil, false
}

// Set is eventually visible, ristretto applies writes through a buffer.
func (c *RistrettoAdvertisementCache) Set(side domain.TradeSide, ads []domain.Advertisement) {
	c.cache.SetWithTTL(toKey(side), slices.Clone(ads), 1, c.ttl)
}

func (c *RistrettoAdvertisementCache) Close() { c.cache.Close() }

func toKey(side domain.TradeSide) string { return "ads:" + string(side) }
