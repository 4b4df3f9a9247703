// README: Quote request and review row definitions.
package quote

import (
	"errors"
	"time"

	"alterquote/internal/modules/pricing"
	"alterquote/internal/types"
)

const (
	// MaxImages is the picker limit per request.
	MaxImages = 5
	// MaxPreviews is how many images a review row shows.
	MaxPreviews = 3
)

var (
	ErrMissingFields = errors.New("name and clothing item are required")
	ErrNoImages      = errors.New("at least one image is required")
	ErrTooManyImages = errors.New("a maximum of 5 images is allowed")
	ErrImageIndex    = errors.New("image index out of range")
	ErrQuoteNotFound = errors.New("quote not found")
)

// Request is what the quote input form submits. Images are opaque local references.
type Request struct {
	Name         string
	ClothingItem string
	Images       []string
}

type Quote struct {
	ID           types.ID
	Name         string
	ClothingItem string
	Images       []string
	CreatedAt    time.Time
}

type Receipt struct {
	QuoteID types.ID
	Message string
}

// Estimate is one row on the review listing.
type Estimate struct {
	Quote          Quote
	DistanceOneWay float64
	Costs          pricing.CostBreakdown
}

func (e Estimate) Previews() []string {
	if len(e.Quote.Images) <= MaxPreviews {
		return e.Quote.Images
	}
	return e.Quote.Images[:MaxPreviews]
}
