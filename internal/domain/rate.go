package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyBOB  = "BOB"
	CurrencyUSDT = "USDT"
)

var two = decimal.NewFromInt(2)

// RatePair is a directional quote for one USDT expressed in BOB.
// BuyPrice is what it costs to acquire USDT, SellPrice is what disposing of it yields.
type RatePair struct {
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	AvgPrice  decimal.Decimal `json:"avg_price"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
}

func NewRatePair(buy, sell decimal.Decimal, ts time.Time, source string) RatePair {
	return RatePair{
		BuyPrice:  buy,
		SellPrice: sell,
		AvgPrice:  buy.Add(sell).Div(two),
		Timestamp: ts,
		Source:    source,
	}
}

// UsdtPrice is the mid price of USDT in BOB.
func (p RatePair) UsdtPrice() decimal.Decimal {
	return p.AvgPrice
}

// BobToUsdRate approximates how many USD one BOB buys. Zero when the mid price is unknown.
func (p RatePair) BobToUsdRate() decimal.Decimal {
	if p.AvgPrice.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(p.AvgPrice)
}

func (p RatePair) IsZero() bool {
	return p.BuyPrice.IsZero() && p.SellPrice.IsZero() && p.Timestamp.IsZero()
}

// ExchangeRates is the simplified record produced from a spot ticker.
type ExchangeRates struct {
	Symbol       string          `json:"symbol"`
	AnchorRate   decimal.Decimal `json:"anchor_rate"`
	UsdtPrice    decimal.Decimal `json:"usdt_price"`
	CombinedRate decimal.Decimal `json:"combined_rate"`
	Timestamp    time.Time       `json:"timestamp"`
}

func NewExchangeRates(symbol string, anchor, usdtPrice decimal.Decimal, ts time.Time) ExchangeRates {
	return ExchangeRates{
		Symbol:       symbol,
		AnchorRate:   anchor,
		UsdtPrice:    usdtPrice,
		CombinedRate: anchor.Mul(usdtPrice),
		Timestamp:    ts,
	}
}

// RatePair collapses the ticker record into a spread-less pair.
func (r ExchangeRates) RatePair(source string) RatePair {
	return NewRatePair(r.CombinedRate, r.CombinedRate, r.Timestamp, source)
}
