package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	// BobToUsdt converts the local fiat into the asset.
	BobToUsdt Direction = "BOB_USDT"
	// UsdtToBob converts the asset back into the local fiat.
	UsdtToBob Direction = "USDT_BOB"
)

func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(raw))) {
	case BobToUsdt:
		return BobToUsdt, nil
	case UsdtToBob:
		return UsdtToBob, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
}

func (d Direction) From() string {
	if d == UsdtToBob {
		return CurrencyUSDT
	}
	return CurrencyBOB
}

func (d Direction) To() string {
	if d == UsdtToBob {
		return CurrencyBOB
	}
	return CurrencyUSDT
}

type ConversionResult struct {
	Direction        Direction       `json:"direction"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	ExchangeRateUsed decimal.Decimal `json:"exchange_rate_used"`
	SourceAmount     decimal.Decimal `json:"source_amount"`
	TargetAmount     decimal.Decimal `json:"target_amount"`
	RateContext      RatePair        `json:"rate_context"`
	Timestamp        time.Time       `json:"timestamp"`
}
