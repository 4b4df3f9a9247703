// README: Quote handlers for submission and the review listing.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alterquote/internal/modules/quote"
	"alterquote/internal/types"
)

type QuoteHandler struct {
	quote *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quote: svc}
}

type submitQuoteReq struct {
	Name         string   `json:"name"`
	ClothingItem string   `json:"clothing_item"`
	Images       []string `json:"images"`
}

type reviewRow struct {
	QuoteID        string   `json:"quote_id"`
	Name           string   `json:"name"`
	ClothingItem   string   `json:"clothing_item"`
	ImageCount     int      `json:"image_count"`
	ImagePreviews  []string `json:"image_previews"`
	DistanceOneWay float64  `json:"distance_one_way"`
	Costs          costView `json:"costs"`
}

// Submit handles POST /api/quotes.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req submitQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	receipt, err := h.quote.Submit(c.Request.Context(), quote.Request{
		Name:         req.Name,
		ClothingItem: req.ClothingItem,
		Images:       req.Images,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{
		"quote_id": receipt.QuoteID,
		"status":   "submitted",
		"message":  receipt.Message,
	})
}

// Accept handles POST /api/quotes/:id/accept.
func (h *QuoteHandler) Accept(c *gin.Context) {
	receipt, err := h.quote.Accept(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"quote_id": receipt.QuoteID,
		"status":   "accepted",
		"message":  receipt.Message,
	})
}

// Review handles GET /api/quotes.
func (h *QuoteHandler) Review(c *gin.Context) {
	rows, err := h.quote.Review(c.Request.Context())
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	out := make([]reviewRow, 0, len(rows))
	for _, r := range rows {
		previews := r.Previews()
		if previews == nil {
			previews = []string{}
		}
		out = append(out, reviewRow{
			QuoteID:        string(r.Quote.ID),
			Name:           r.Quote.Name,
			ClothingItem:   r.Quote.ClothingItem,
			ImageCount:     len(r.Quote.Images),
			ImagePreviews:  previews,
			DistanceOneWay: r.DistanceOneWay,
			Costs:          newCostView(r.Costs),
		})
	}
	writeJSON(c, http.StatusOK, map[string]any{"quotes": out})
}
