package maps

import (
	"context"
	"errors"
	"math"
	"testing"

	"alterquote/internal/types"
)

func TestHaversineMiles_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantMiles float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 51.5074, Lng: -0.1278},
			b:         types.Point{Lat: 51.5074, Lng: -0.1278},
			wantMiles: 0,
			tolerance: 0.001,
		},
		{
			name:      "London to Manchester (~163mi)",
			a:         types.Point{Lat: 51.5074, Lng: -0.1278},
			b:         types.Point{Lat: 53.4808, Lng: -2.2426},
			wantMiles: 163,
			tolerance: 3,
		},
		{
			name:      "New York to Los Angeles (~2451mi)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantMiles: 2451,
			tolerance: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineMiles(tt.a, tt.b)
			if math.Abs(got-tt.wantMiles) > tt.tolerance {
				t.Errorf("haversineMiles() = %f, want %f (±%f)", got, tt.wantMiles, tt.tolerance)
			}
		})
	}
}

func TestHaversineMiles_Symmetry(t *testing.T) {
	a := types.Point{Lat: 51.0, Lng: -1.0}
	b := types.Point{Lat: 52.0, Lng: 0.5}
	if d1, d2 := haversineMiles(a, b), haversineMiles(b, a); math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 51.5074 , -0.1278 ")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	if p.Lat != 51.5074 || p.Lng != -0.1278 {
		t.Errorf("ParsePoint = %+v", p)
	}

	for _, bad := range []string{"", "Soho", "1,2,3", "abc,1", "91,0", "0,181"} {
		if _, err := ParsePoint(bad); !errors.Is(err, ErrMissingPlaces) {
			t.Errorf("ParsePoint(%q) error = %v, want ErrMissingPlaces", bad, err)
		}
	}
}

func TestCoordinateDistance(t *testing.T) {
	var src DistanceSource = CoordinateDistance{}
	d, err := src.OneWayDistance(context.Background(), "51.5074,-0.1278", "51.5074,-0.1278")
	if err != nil || d != 0 {
		t.Errorf("OneWayDistance = %v, %v; want 0, nil", d, err)
	}
	if _, err := src.OneWayDistance(context.Background(), "51.5,-0.1", ""); !errors.Is(err, ErrMissingPlaces) {
		t.Errorf("expected ErrMissingPlaces, got %v", err)
	}
}
