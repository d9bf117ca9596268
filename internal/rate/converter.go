package rate

import (
	"context"
	"fmt"
	"p2prates/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals converted amounts are rounded to.
const DisplayPlaces = 2

type RateProvider interface {
	GetRates(ctx context.Context) domain.RatePair
}

// Engine converts amounts between BOB and USDT. Arithmetic is done at full precision
// and the converted amount is rounded once, half away from zero.
type Engine struct {
	rates RateProvider
	clock clockwork.Clock
}

// ConvertSourceToTarget converts BOB to USDT dividing by the buy price.
func (e *Engine) ConvertSourceToTarget(ctx context.Context, amount decimal.Decimal) (domain.ConversionResult, error) {
	return e.Convert(ctx, domain.BobToUsdt, amount)
}

// ConvertTargetToSource converts USDT to BOB multiplying by the sell price.
func (e *Engine) ConvertTargetToSource(ctx context.Context, amount decimal.Decimal) (domain.ConversionResult, error) {
	return e.Convert(ctx, domain.UsdtToBob, amount)
}

// Convert rejects negative amounts. A zero amount short-circuits without reading rates and
// reports a zero ExchangeRateUsed with an empty RateContext.
func (e *Engine) Convert(ctx context.Context, direction domain.Direction, amount decimal.Decimal) (domain.ConversionResult, error) {
	if direction != domain.BobToUsdt && direction != domain.UsdtToBob {
		return domain.ConversionResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, direction)
	}
	if err := ValidateAmount(amount); err != nil {
		return domain.ConversionResult{}, err
	}

	result := domain.ConversionResult{
		Direction:        direction,
		From:             direction.From(),
		To:               direction.To(),
		ExchangeRateUsed: decimal.Zero,
		SourceAmount:     amount,
		TargetAmount:     decimal.Zero,
		Timestamp:        e.clock.Now(),
	}
	if amount.IsZero() {
		return result, nil
	}

	pair := e.rates.GetRates(ctx)

	var rate, exact decimal.Decimal
	switch direction {
	case domain.BobToUsdt:
		rate = pair.BuyPrice
		if !rate.IsPositive() {
			return domain.ConversionResult{}, fmt.Errorf("%w: buy price %s", domain.ErrRateUnavailable, rate)
		}
		exact = amount.Div(rate)
	case domain.UsdtToBob:
		rate = pair.SellPrice
		if !rate.IsPositive() {
			return domain.ConversionResult{}, fmt.Errorf("%w: sell price %s", domain.ErrRateUnavailable, rate)
		}
		exact = amount.Mul(rate)
	}

	result.ExchangeRateUsed = rate
	result.TargetAmount = exact.Round(DisplayPlaces)
	result.RateContext = pair
	return result, nil
}

// Swap exchanges the BOB and USDT field values and recomputes the counterpart of the edited field.
// edited == BobToUsdt means the BOB field is authoritative after the swap.
func (e *Engine) Swap(ctx context.Context, edited domain.Direction, bob, usdt decimal.Decimal) (domain.ConversionResult, error) {
	bob, usdt = usdt, bob
	if edited == domain.UsdtToBob {
		return e.Convert(ctx, domain.UsdtToBob, usdt)
	}
	return e.Convert(ctx, domain.BobToUsdt, bob)
}

func NewEngine(rates RateProvider, clock clockwork.Clock) *Engine {
	return &Engine{rates: rates, clock: clock}
}
