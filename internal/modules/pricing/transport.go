package pricing

import (
	"fmt"
	"math"
)

// TransportEstimator prices a single leg of a ride using a linear fare model.
type TransportEstimator struct {
	model TransportFareModel
}

func NewTransportEstimator(model TransportFareModel) TransportEstimator {
	return TransportEstimator{model: model}
}

// OneWay returns the fare for one leg. Round-trip doubling is left to the caller.
func (e TransportEstimator) OneWay(distance float64) (float64, error) {
	if err := validateDistance(distance); err != nil {
		return 0, err
	}
	estimatedTime := distance * e.model.SpeedFactor
	fare := e.model.BaseFare + distance*e.model.PerDistance + estimatedTime*e.model.PerTime
	if err := checkFare(distance, fare); err != nil {
		return 0, err
	}
	return fare, nil
}

// RoundTrip applies the model's round-trip multiplier to a one-way fare.
func (e TransportEstimator) RoundTrip(distance float64) (float64, error) {
	oneWay, err := e.OneWay(distance)
	if err != nil {
		return 0, err
	}
	fare := oneWay * e.model.RoundTripMultiplier
	if err := checkFare(distance, fare); err != nil {
		return 0, err
	}
	return fare, nil
}

func validateDistance(d float64) error {
	switch {
	case math.IsNaN(d), math.IsInf(d, 0):
		return fmt.Errorf("%w: %v is not finite", ErrInvalidDistance, d)
	case d < 0:
		return fmt.Errorf("%w: %v is negative", ErrInvalidDistance, d)
	}
	return nil
}

// checkFare rejects distances large enough to overflow the fare.
func checkFare(distance, fare float64) error {
	if math.IsNaN(fare) || math.IsInf(fare, 0) {
		return fmt.Errorf("%w: %v overflows the fare", ErrInvalidDistance, distance)
	}
	return nil
}
