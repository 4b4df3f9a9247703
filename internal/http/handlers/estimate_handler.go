// README: Estimate handler prices a single clothing item plus round-trip transport.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"alterquote/internal/maps"
	"alterquote/internal/modules/pricing"
)

const distanceLookupTimeout = 10 * time.Second

type EstimateHandler struct {
	pricing  *pricing.Service
	distance maps.DistanceSource
}

// NewEstimateHandler accepts a nil distance source; origin/destination requests are then rejected.
func NewEstimateHandler(pricingSvc *pricing.Service, distance maps.DistanceSource) *EstimateHandler {
	return &EstimateHandler{pricing: pricingSvc, distance: distance}
}

type estimateReq struct {
	ClothingItem   string   `json:"clothing_item"`
	DistanceOneWay *float64 `json:"distance_one_way"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
}

type estimateResp struct {
	costView
	DistanceOneWay  float64 `json:"distance_one_way"`
	TransportOneWay float64 `json:"transport_one_way"`
}

// Create handles POST /api/estimates.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	distance := req.DistanceOneWay
	if distance == nil && (strings.TrimSpace(req.Origin) != "" || strings.TrimSpace(req.Destination) != "") {
		if h.distance == nil {
			writeError(c, http.StatusBadRequest, "distance lookup is not configured; send distance_one_way")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), distanceLookupTimeout)
		defer cancel()

		d, err := h.distance.OneWayDistance(ctx, req.Origin, req.Destination)
		if err != nil {
			writeQuoteError(c, err)
			return
		}
		distance = &d
	}

	costs, err := h.pricing.Estimate(c.Request.Context(), pricing.EstimateRequest{
		ClothingItem:   req.ClothingItem,
		DistanceOneWay: distance,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	used := pricing.DefaultDistance
	if distance != nil {
		used = *distance
	}
	oneWay, err := h.pricing.TransportOneWay(used)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, estimateResp{
		costView:        newCostView(costs),
		DistanceOneWay:  used,
		TransportOneWay: oneWay,
	})
}
