// README: Quote service validates submissions and prices the review listing.
package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alterquote/internal/modules/pricing"
	"alterquote/internal/types"
)

type Pricing interface {
	Calculate(item string, distanceOneWay float64) (pricing.CostBreakdown, error)
}

type Service struct {
	source         Source
	sink           Sink
	pricing        Pricing
	reviewDistance float64
}

func NewService(source Source, sink Sink, pricing Pricing, reviewDistance float64) *Service {
	return &Service{
		source:         source,
		sink:           sink,
		pricing:        pricing,
		reviewDistance: reviewDistance,
	}
}

func (s *Service) Submit(ctx context.Context, req Request) (Receipt, error) {
	if err := ValidateSubmission(req); err != nil {
		return Receipt{}, err
	}
	var images []string
	for _, ref := range req.Images {
		var err error
		if images, err = AddImage(images, ref); err != nil {
			return Receipt{}, err
		}
	}

	q := Quote{
		ID:           types.NewID(),
		Name:         strings.TrimSpace(req.Name),
		ClothingItem: strings.TrimSpace(req.ClothingItem),
		Images:       images,
		CreatedAt:    time.Now(),
	}
	if err := s.sink.Submit(ctx, q); err != nil {
		return Receipt{}, fmt.Errorf("submit quote: %w", err)
	}
	return Receipt{QuoteID: q.ID, Message: "Quote submitted"}, nil
}

func (s *Service) List(ctx context.Context) ([]Quote, error) {
	return s.source.List(ctx)
}

// Accept marks a listed quote as accepted by the reviewer.
func (s *Service) Accept(ctx context.Context, id types.ID) (Receipt, error) {
	quotes, err := s.List(ctx)
	if err != nil {
		return Receipt{}, fmt.Errorf("list quotes: %w", err)
	}
	for _, q := range quotes {
		if q.ID != id {
			continue
		}
		if err := s.sink.Accept(ctx, q); err != nil {
			return Receipt{}, fmt.Errorf("accept quote: %w", err)
		}
		return Receipt{QuoteID: q.ID, Message: "Accepted quote from " + q.Name}, nil
	}
	return Receipt{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, id)
}

// Review lists quotes and prices each one at the configured review distance.
func (s *Service) Review(ctx context.Context) ([]Estimate, error) {
	quotes, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	out := make([]Estimate, 0, len(quotes))
	for _, q := range quotes {
		costs, err := s.pricing.Calculate(q.ClothingItem, s.reviewDistance)
		if err != nil {
			return nil, fmt.Errorf("price quote %s: %w", q.ID, err)
		}
		out = append(out, Estimate{Quote: q, DistanceOneWay: s.reviewDistance, Costs: costs})
	}
	return out, nil
}
