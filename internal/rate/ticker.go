package rate

import (
	"context"
	"errors"
	"fmt"
	"p2prates/internal/adapters"
	"p2prates/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const SourceTicker = "ticker"

// Ticker combines a spot USDT/USD price with the fixed USD/BOB anchor.
type Ticker struct {
	client        adapters.TickerClient
	symbol        string
	anchorRate    decimal.Decimal
	fallbackRatio decimal.Decimal
	clock         clockwork.Clock
}

// FetchExchangeRates returns an error only when the ticker could not be reached.
// A price that cannot be parsed is replaced by the fallback ratio.
func (t *Ticker) FetchExchangeRates(ctx context.Context) (domain.ExchangeRates, error) {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	ratio, err := t.client.GetPrice(reqCtx, t.symbol)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedPrice) {
			return domain.ExchangeRates{}, fmt.Errorf("ticker %s unavailable: %w", t.symbol, err)
		}
		logrus.WithError(err).Warnf("Using fallback ratio %s for %s", t.fallbackRatio, t.symbol)
		ratio = t.fallbackRatio
	}
	return domain.NewExchangeRates(t.symbol, t.anchorRate, ratio, t.clock.Now()), nil
}

// Fallback is the record published before the first successful fetch.
func (t *Ticker) Fallback() domain.ExchangeRates {
	return domain.NewExchangeRates(t.symbol, t.anchorRate, t.fallbackRatio, t.clock.Now())
}

func NewTicker(client adapters.TickerClient, symbol string, anchorRate, fallbackRatio decimal.Decimal, clock clockwork.Clock) *Ticker {
	return &Ticker{client: client, symbol: symbol, anchorRate: anchorRate, fallbackRatio: fallbackRatio, clock: clock}
}
