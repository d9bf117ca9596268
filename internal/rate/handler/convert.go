package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"p2prates/internal/domain"
	"p2prates/internal/rate"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 512

type ConvertRequest struct {
	Direction string `json:"direction" example:"BOB_USDT"`
	Amount    string `json:"amount" example:"100"`
}

type SwapRequest struct {
	Edited string `json:"edited" example:"BOB"`
	Bob    string `json:"bob" example:"14.25"`
	Usdt   string `json:"usdt" example:"100"`
}

// Convert godoc
// @Summary Convert an amount
// @Description BOB_USDT divides by the buy price, USDT_BOB multiplies by the sell price. Result rounded to 2 decimals.
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} domain.ConversionResult
// @Failure 400 {object} errorResponse
// @Router /conversions [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := rate.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.converter.Convert(r.Context(), direction, amount)
	if err != nil {
		h.writeConversionError(w, "Convert", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Swap godoc
// @Summary Swap both fields and recompute
// @Description Exchanges the BOB and USDT values, then derives the counterpart of the edited field.
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body SwapRequest true "Swap request"
// @Success 200 {object} domain.ConversionResult
// @Failure 400 {object} errorResponse
// @Router /conversions/swap [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	var req SwapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var edited domain.Direction
	switch strings.ToUpper(strings.TrimSpace(req.Edited)) {
	case domain.CurrencyBOB:
		edited = domain.BobToUsdt
	case domain.CurrencyUSDT:
		edited = domain.UsdtToBob
	default:
		writeError(w, http.StatusBadRequest, "edited must be BOB or USDT")
		return
	}

	bob, err := rate.ParseAmount(req.Bob)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	usdt, err := rate.ParseAmount(req.Usdt)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.converter.Swap(r.Context(), edited, bob, usdt)
	if err != nil {
		h.writeConversionError(w, "Swap", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeConversionError(w http.ResponseWriter, handlerName string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDirection):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRateUnavailable):
		writeError(w, http.StatusServiceUnavailable, "rate unavailable, try again later")
	default:
		msg := "ups, couldn't convert this time"
		logrus.WithError(err).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
