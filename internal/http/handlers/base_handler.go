// README: Base handler utilities (JSON helpers, error mapping, money views).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alterquote/internal/maps"
	"alterquote/internal/modules/pricing"
	"alterquote/internal/modules/quote"
	"alterquote/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

type costView struct {
	ClothingCost  float64     `json:"clothing_cost"`
	TransportCost float64     `json:"transport_cost"`
	Total         float64     `json:"total"`
	Display       displayView `json:"display"`
}

type displayView struct {
	ClothingCost  string `json:"clothing_cost"`
	TransportCost string `json:"transport_cost"`
	Total         string `json:"total"`
}

func newCostView(c pricing.CostBreakdown) costView {
	return costView{
		ClothingCost:  c.ClothingCost,
		TransportCost: c.TransportCost,
		Total:         c.Total,
		Display: displayView{
			ClothingCost:  types.GBP(c.ClothingCost).String(),
			TransportCost: types.GBP(c.TransportCost).String(),
			Total:         types.GBP(c.Total).String(),
		},
	}
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidDistance),
		errors.Is(err, quote.ErrMissingFields),
		errors.Is(err, quote.ErrNoImages),
		errors.Is(err, quote.ErrTooManyImages),
		errors.Is(err, quote.ErrImageIndex),
		errors.Is(err, maps.ErrMissingPlaces):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, quote.ErrQuoteNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, maps.ErrNoRoute):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
