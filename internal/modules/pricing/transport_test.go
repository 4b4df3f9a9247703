package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestTransportEstimator_OneWay(t *testing.T) {
	e := NewTransportEstimator(DefaultFareModel())

	for _, d := range []float64{0, 0.1, 1, 2.5, 5, 12.75, 100, 1e6} {
		got, err := e.OneWay(d)
		if err != nil {
			t.Fatalf("OneWay(%v) error = %v", d, err)
		}
		want := 2 + d*3.0
		if math.Abs(got-want) > 1e-9*math.Max(1, want) {
			t.Errorf("OneWay(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestTransportEstimator_ZeroDistanceIsBaseFare(t *testing.T) {
	e := NewTransportEstimator(DefaultFareModel())
	got, err := e.OneWay(0)
	if err != nil {
		t.Fatalf("OneWay(0) error = %v", err)
	}
	if got != 2 {
		t.Errorf("OneWay(0) = %v, want 2", got)
	}
}

func TestTransportEstimator_RoundTripDoubles(t *testing.T) {
	e := NewTransportEstimator(DefaultFareModel())
	oneWay, _ := e.OneWay(5)
	roundTrip, err := e.RoundTrip(5)
	if err != nil {
		t.Fatalf("RoundTrip(5) error = %v", err)
	}
	if roundTrip != oneWay*2 {
		t.Errorf("RoundTrip(5) = %v, want %v", roundTrip, oneWay*2)
	}
}

func TestTransportEstimator_RejectsInvalidDistance(t *testing.T) {
	e := NewTransportEstimator(DefaultFareModel())

	tests := []struct {
		name     string
		distance float64
	}{
		{"negative", -0.5},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.OneWay(tt.distance); !errors.Is(err, ErrInvalidDistance) {
				t.Errorf("OneWay(%v) error = %v, want ErrInvalidDistance", tt.distance, err)
			}
		})
	}
}

func TestTransportEstimator_RejectsOverflowingDistance(t *testing.T) {
	e := NewTransportEstimator(DefaultFareModel())

	for _, d := range []float64{1e308, math.MaxFloat64} {
		if _, err := e.OneWay(d); !errors.Is(err, ErrInvalidDistance) {
			t.Errorf("OneWay(%v) error = %v, want ErrInvalidDistance", d, err)
		}
		if _, err := e.RoundTrip(d); !errors.Is(err, ErrInvalidDistance) {
			t.Errorf("RoundTrip(%v) error = %v, want ErrInvalidDistance", d, err)
		}
	}

	// one-way fits, doubling overflows
	d := math.MaxFloat64 / 4
	if _, err := e.OneWay(d); err != nil {
		t.Fatalf("OneWay(%v) error = %v", d, err)
	}
	if _, err := e.RoundTrip(d); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("RoundTrip(%v) error = %v, want ErrInvalidDistance", d, err)
	}
}
