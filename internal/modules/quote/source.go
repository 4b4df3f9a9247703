// README: Quote listing source and submission sink collaborators.
package quote

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Source supplies quotes for the review listing.
type Source interface {
	List(ctx context.Context) ([]Quote, error)
}

// Sink receives submitted quotes and accept decisions.
type Sink interface {
	Submit(ctx context.Context, q Quote) error
	Accept(ctx context.Context, q Quote) error
}

// StaticSource serves a fixed set of sample quotes.
type StaticSource struct {
	quotes []Quote
}

func NewStaticSource(quotes ...Quote) *StaticSource {
	return &StaticSource{quotes: quotes}
}

// NewSampleSource returns the sample quotes shown before a backend exists.
func NewSampleSource() *StaticSource {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return NewStaticSource(
		Quote{ID: "1", Name: "John Doe", ClothingItem: "Dress repair", Images: []string{}, CreatedAt: created},
		Quote{ID: "2", Name: "Jane Smith", ClothingItem: "Jeans hemming", Images: []string{}, CreatedAt: created},
	)
}

func (s *StaticSource) List(ctx context.Context) ([]Quote, error) {
	out := make([]Quote, len(s.quotes))
	for i, q := range s.quotes {
		q.Images = append([]string(nil), q.Images...)
		out[i] = q
	}
	return out, nil
}

// NopSink acknowledges submissions without storing them.
type NopSink struct {
	log *zap.Logger
}

func NewNopSink(log *zap.Logger) *NopSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &NopSink{log: log}
}

func (s *NopSink) Submit(ctx context.Context, q Quote) error {
	s.log.Info("quote submitted",
		zap.String("quote_id", string(q.ID)),
		zap.String("clothing_item", q.ClothingItem),
		zap.Int("images", len(q.Images)),
	)
	return nil
}

func (s *NopSink) Accept(ctx context.Context, q Quote) error {
	s.log.Info("quote accepted",
		zap.String("quote_id", string(q.ID)),
		zap.String("name", q.Name),
	)
	return nil
}
