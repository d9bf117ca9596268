package rate

import (
	"context"
	"p2prates/internal/adapters"
	"p2prates/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

const perRequestTimeout = 5 * time.Second

// QuoteFetcher is the fail-soft boundary around the marketplace client: any transport or
// decoding failure turns into an empty listing set.
type QuoteFetcher struct {
	client adapters.AdvertisementClient
	cache  adapters.AdvertisementCache
}

func (f *QuoteFetcher) Fetch(ctx context.Context, side domain.TradeSide) []domain.Advertisement {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	ads, err := f.client.FetchAdvertisements(reqCtx, side)
	if err != nil {
		logrus.WithError(err).WithField("side", side).Warn("Marketplace listings unavailable, treating as empty")
		return nil
	}
	if f.cache != nil && len(ads) > 0 {
		f.cache.Set(side, ads)
	}
	return ads
}

// Cached serves the last listings of a side when still present, falling back to a live fetch.
func (f *QuoteFetcher) Cached(ctx context.Context, side domain.TradeSide) []domain.Advertisement {
	if f.cache != nil {
		if ads, ok := f.cache.Get(side); ok {
			return ads
		}
	}
	return f.Fetch(ctx, side)
}

// NewQuoteFetcher builds a fetcher; cache may be nil.
func NewQuoteFetcher(client adapters.AdvertisementClient, cache adapters.AdvertisementCache) *QuoteFetcher {
	return &QuoteFetcher{client: client, cache: cache}
}
