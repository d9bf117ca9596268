package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type GetRatesResponse struct {
	BuyPrice     decimal.Decimal `json:"buy_price" swaggertype:"string" example:"7.02"`
	SellPrice    decimal.Decimal `json:"sell_price" swaggertype:"string" example:"6.9"`
	AvgPrice     decimal.Decimal `json:"avg_price" swaggertype:"string" example:"6.96"`
	UsdtPrice    decimal.Decimal `json:"usdt_price" swaggertype:"string" example:"6.96"`
	BobToUsdRate decimal.Decimal `json:"bob_to_usd_rate" swaggertype:"string" example:"0.1436781609195402"`
	Source       string          `json:"source" example:"p2p"`
	Stale        bool            `json:"stale" example:"false"`
	Timestamp    time.Time       `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// GetRates godoc
// @Summary Current BOB/USDT rates
// @Description Best P2P buy and sell prices with their mid price. Served from cache while fresh.
// @Tags Rates
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	pair := h.cache.GetRates(r.Context())

	writeJSON(w, http.StatusOK, GetRatesResponse{
		BuyPrice:     pair.BuyPrice,
		SellPrice:    pair.SellPrice,
		AvgPrice:     pair.AvgPrice,
		UsdtPrice:    pair.UsdtPrice(),
		BobToUsdRate: pair.BobToUsdRate(),
		Source:       pair.Source,
		Stale:        h.cache.IsStale(),
		Timestamp:    pair.Timestamp,
	})
}

type RefreshRatesResponse struct {
	Status string `json:"status" example:"refresh scheduled"`
}

// RefreshRates godoc
// @Summary Force a rate refresh
// @Description Recomputes rates in the background regardless of cache age. Watch /rates/stream for the result.
// @Tags Rates
// @Produce json
// @Success 202 {object} RefreshRatesResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	h.cache.ForceRefresh(r.Context())
	writeJSON(w, http.StatusAccepted, RefreshRatesResponse{Status: "refresh scheduled"})
}

// StreamRates godoc
// @Summary Rate updates stream
// @Description Server-sent events, one "rates" event per cache replacement.
// @Tags Rates
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /rates/stream [get]
func (h *Handler) StreamRates(w http.ResponseWriter, r *http.Request) {
	streamEvents(w, r, "rates", h.cache.Subscribe)
}
