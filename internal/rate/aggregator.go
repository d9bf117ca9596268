package rate

import (
	"context"
	"p2prates/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const SourceP2P = "p2p"

// Aggregator reduces both sides of the P2P book to a single RatePair.
type Aggregator struct {
	fetcher      *QuoteFetcher
	fallbackBuy  decimal.Decimal
	fallbackSell decimal.Decimal
	clock        clockwork.Clock
}

// ComputeRates never fails: an empty side is replaced by its fallback price.
//
//   - BUY listings are sellers' asks, the cheapest one is what acquiring USDT costs.
//   - SELL listings are buyers' bids, the highest one is what disposing of USDT yields.
func (a *Aggregator) ComputeRates(ctx context.Context) domain.RatePair {
	buyAds, sellAds := a.fetchBothSides(ctx, a.fetcher.Fetch)

	buyPrice, ok := minPrice(buyAds)
	if !ok {
		buyPrice = a.fallbackBuy
	}
	sellPrice, ok := maxPrice(sellAds)
	if !ok {
		sellPrice = a.fallbackSell
	}
	if len(buyAds) == 0 || len(sellAds) == 0 {
		logrus.WithFields(logrus.Fields{
			"buy_listings":  len(buyAds),
			"sell_listings": len(sellAds),
		}).Warn("Aggregating with fallback prices")
	}

	return domain.NewRatePair(buyPrice, sellPrice, a.clock.Now(), SourceP2P)
}

// TopAdvertisements returns up to limit listings per side, served from the listing cache when warm.
func (a *Aggregator) TopAdvertisements(ctx context.Context, limit int) (buy, sell []domain.Advertisement) {
	buy, sell = a.fetchBothSides(ctx, a.fetcher.Cached)
	return head(buy, limit), head(sell, limit)
}

// Fallback is the pair served before the first successful aggregation.
func (a *Aggregator) Fallback() domain.RatePair {
	return domain.NewRatePair(a.fallbackBuy, a.fallbackSell, a.clock.Now(), SourceP2P)
}

func (a *Aggregator) fetchBothSides(ctx context.Context, fetch func(context.Context, domain.TradeSide) []domain.Advertisement) (buy, sell []domain.Advertisement) {
	// both calls are fail-soft, the group only joins them
	var g errgroup.Group
	g.Go(func() error {
		buy = fetch(ctx, domain.SideBuy)
		return nil
	})
	g.Go(func() error {
		sell = fetch(ctx, domain.SideSell)
		return nil
	})
	_ = g.Wait()
	return buy, sell
}

func minPrice(ads []domain.Advertisement) (decimal.Decimal, bool) {
	if len(ads) == 0 {
		return decimal.Decimal{}, false
	}
	best := ads[0].Price
	for _, ad := range ads[1:] {
		if ad.Price.LessThan(best) {
			best = ad.Price
		}
	}
	return best, true
}

func maxPrice(ads []domain.Advertisement) (decimal.Decimal, bool) {
	if len(ads) == 0 {
		return decimal.Decimal{}, false
	}
	best := ads[0].Price
	for _, ad := range ads[1:] {
		if ad.Price.GreaterThan(best) {
			best = ad.Price
		}
	}
	return best, true
}

func head(ads []domain.Advertisement, n int) []domain.Advertisement {
	if n <= 0 || len(ads) <= n {
		return ads
	}
	return ads[:n]
}

func NewAggregator(fetcher *QuoteFetcher, fallbackBuy, fallbackSell decimal.Decimal, clock clockwork.Clock) *Aggregator {
	return &Aggregator{fetcher: fetcher, fallbackBuy: fallbackBuy, fallbackSell: fallbackSell, clock: clock}
}
