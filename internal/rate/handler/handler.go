package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"p2prates/internal/domain"

	"github.com/shopspring/decimal"
)

type rateCache interface {
	GetRates(ctx context.Context) domain.RatePair
	ForceRefresh(ctx context.Context)
	IsStale() bool
	Subscribe() (<-chan domain.RatePair, func())
}

type converter interface {
	Convert(ctx context.Context, direction domain.Direction, amount decimal.Decimal) (domain.ConversionResult, error)
	Swap(ctx context.Context, edited domain.Direction, bob, usdt decimal.Decimal) (domain.ConversionResult, error)
}

type advertisementBook interface {
	TopAdvertisements(ctx context.Context, limit int) (buy, sell []domain.Advertisement)
}

type tickerStream interface {
	Latest() domain.ExchangeRates
	RefreshRates(ctx context.Context) domain.ExchangeRates
	Subscribe() (<-chan domain.ExchangeRates, func())
}

type Handler struct {
	cache     rateCache
	converter converter
	book      advertisementBook
	ticker    tickerStream
	topLimit  int
}

func NewRateHandler(cache rateCache, converter converter, book advertisementBook, ticker tickerStream, topLimit int) *Handler {
	return &Handler{cache: cache, converter: converter, book: book, ticker: ticker, topLimit: topLimit}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
