// README: Pricing service combines clothing and transport estimates into a quote cost.
package pricing

import "context"

type Service struct {
	clothing  ClothingEstimator
	transport TransportEstimator
}

func NewService(table PriceTable, fares TransportFareModel) *Service {
	return &Service{
		clothing:  NewClothingEstimator(table),
		transport: NewTransportEstimator(fares),
	}
}

// NewDefaultService uses the fixed price table and fare model.
func NewDefaultService() *Service {
	return NewService(DefaultPriceTable(), DefaultFareModel())
}

// Calculate keeps full precision; round only when displaying.
func (s *Service) Calculate(item string, distanceOneWay float64) (CostBreakdown, error) {
	transport, err := s.transport.RoundTrip(distanceOneWay)
	if err != nil {
		return CostBreakdown{}, err
	}
	return newCostBreakdown(s.clothing.Estimate(item), transport), nil
}

func (s *Service) Estimate(ctx context.Context, req EstimateRequest) (CostBreakdown, error) {
	distance := DefaultDistance
	if req.DistanceOneWay != nil {
		distance = *req.DistanceOneWay
	}
	return s.Calculate(req.ClothingItem, distance)
}

// TransportOneWay is the single-leg fare shown next to the round-trip cost.
func (s *Service) TransportOneWay(distance float64) (float64, error) {
	return s.transport.OneWay(distance)
}
