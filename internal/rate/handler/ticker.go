package handler

import (
	"net/http"
)

// GetTicker godoc
// @Summary Ticker based rates
// @Description Last spot ticker record combined with the USD/BOB anchor rate
// @Tags Ticker
// @Produce json
// @Success 200 {object} domain.ExchangeRates
// @Router /ticker [get]
func (h *Handler) GetTicker(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ticker.Latest())
}

// RefreshTicker godoc
// @Summary Poll the ticker now
// @Description Runs one poll outside the schedule and returns the published record
// @Tags Ticker
// @Produce json
// @Success 200 {object} domain.ExchangeRates
// @Router /ticker/refresh [post]
func (h *Handler) RefreshTicker(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ticker.RefreshRates(r.Context()))
}

// StreamTicker godoc
// @Summary Ticker updates stream
// @Description Server-sent events, one "ticker" event per poll
// @Tags Ticker
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /ticker/stream [get]
func (h *Handler) StreamTicker(w http.ResponseWriter, r *http.Request) {
	streamEvents(w, r, "ticker", h.ticker.Subscribe)
}
