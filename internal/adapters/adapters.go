package adapters

import (
	"context"
	"p2prates/internal/domain"

	"github.com/shopspring/decimal"
)

type AdvertisementClient interface {
	FetchAdvertisements(ctx context.Context, side domain.TradeSide) ([]domain.Advertisement, error)
}

type TickerClient interface {
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

type AdvertisementCache interface {
	Get(side domain.TradeSide) ([]domain.Advertisement, bool)
	Set(side domain.TradeSide, ads []domain.Advertisement)
}
