package rate

import (
	"context"
	"fmt"
	"p2prates/internal/domain"
	"strings"
)

// RateSource produces the directional pair the cache serves.
type RateSource interface {
	Name() string
	ComputeRates(ctx context.Context) (domain.RatePair, error)
	Fallback() domain.RatePair
}

// P2PAggregateSource derives the pair from the best prices of the P2P book.
type P2PAggregateSource struct {
	aggregator *Aggregator
}

func (s *P2PAggregateSource) Name() string { return SourceP2P }

func (s *P2PAggregateSource) ComputeRates(ctx context.Context) (domain.RatePair, error) {
	pair := s.aggregator.ComputeRates(ctx)
	// aggregation itself is fail-soft; a cancelled caller must not overwrite the cache with fallbacks
	if err := ctx.Err(); err != nil {
		return domain.RatePair{}, err
	}
	return pair, nil
}

func (s *P2PAggregateSource) Fallback() domain.RatePair { return s.aggregator.Fallback() }

func NewP2PAggregateSource(aggregator *Aggregator) *P2PAggregateSource {
	return &P2PAggregateSource{aggregator: aggregator}
}

// SpotTickerSource serves a spread-less pair built from the spot ticker.
type SpotTickerSource struct {
	ticker *Ticker
}

func (s *SpotTickerSource) Name() string { return SourceTicker }

func (s *SpotTickerSource) ComputeRates(ctx context.Context) (domain.RatePair, error) {
	rates, err := s.ticker.FetchExchangeRates(ctx)
	if err != nil {
		return domain.RatePair{}, err
	}
	return rates.RatePair(SourceTicker), nil
}

func (s *SpotTickerSource) Fallback() domain.RatePair {
	return s.ticker.Fallback().RatePair(SourceTicker)
}

func NewSpotTickerSource(ticker *Ticker) *SpotTickerSource {
	return &SpotTickerSource{ticker: ticker}
}

// NewSource picks the source variant by its configured name.
func NewSource(name string, aggregator *Aggregator, ticker *Ticker) (RateSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SourceP2P:
		return NewP2PAggregateSource(aggregator), nil
	case SourceTicker:
		return NewSpotTickerSource(ticker), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, name)
}
