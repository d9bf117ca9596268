package handler

import (
	"net/http"
	"p2prates/internal/domain"
	"strconv"
)

const maxAdvertisementsLimit = 10

type GetAdvertisementsResponse struct {
	Buy  []domain.Advertisement `json:"buy"`
	Sell []domain.Advertisement `json:"sell"`
}

// GetAdvertisements godoc
// @Summary Best P2P listings
// @Description Top listings of each side of the book
// @Tags Rates
// @Produce json
// @Param limit query int false "Listings per side (1-10)"
// @Success 200 {object} GetAdvertisementsResponse
// @Failure 400 {object} errorResponse
// @Router /advertisements [get]
func (h *Handler) GetAdvertisements(w http.ResponseWriter, r *http.Request) {
	limit := h.topLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAdvertisementsLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 10")
			return
		}
		limit = n
	}

	buy, sell := h.book.TopAdvertisements(r.Context(), limit)
	if buy == nil {
		buy = []domain.Advertisement{}
	}
	if sell == nil {
		sell = []domain.Advertisement{}
	}
	writeJSON(w, http.StatusOK, GetAdvertisementsResponse{Buy: buy, Sell: sell})
}
