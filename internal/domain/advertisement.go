package domain

import "github.com/shopspring/decimal"

type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// Advertisement is a single P2P listing as published by the marketplace.
type Advertisement struct {
	Price            decimal.Decimal `json:"price"`
	TradableQuantity decimal.Decimal `json:"tradable_quantity"`
	MinTransAmount   decimal.Decimal `json:"min_trans_amount"`
	MaxTransAmount   decimal.Decimal `json:"max_trans_amount"`
	AdvertiserID     string          `json:"advertiser_id"`
	AdvertiserName   string          `json:"advertiser_name"`
	TradeMethods     []string        `json:"trade_methods"`
}
