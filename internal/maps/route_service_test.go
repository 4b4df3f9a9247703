package maps

import (
	"context"
	"errors"
	"math"
	"testing"

	"googlemaps.github.io/maps"
)

type stubDirections struct {
	routes []maps.Route
	err    error
	req    *maps.DirectionsRequest
}

func (s *stubDirections) Directions(_ context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	s.req = r
	return s.routes, nil, s.err
}

func routeOf(metres int) []maps.Route {
	return []maps.Route{{Legs: []*maps.Leg{{Distance: maps.Distance{Meters: metres}}}}}
}

func TestOneWayDistance_ConvertsToMiles(t *testing.T) {
	stub := &stubDirections{routes: routeOf(8047)}
	svc := &RouteService{client: stub, region: "GB"}

	got, err := svc.OneWayDistance(context.Background(), "Camden, London", "Soho, London")
	if err != nil {
		t.Fatalf("OneWayDistance: %v", err)
	}
	if math.Abs(got-5.0) > 0.001 {
		t.Errorf("OneWayDistance = %f, want ~5 miles", got)
	}
	if stub.req.Mode != maps.TravelModeDriving || stub.req.Region != "GB" {
		t.Errorf("unexpected request: %+v", stub.req)
	}
}

func TestOneWayDistance_NoRoute(t *testing.T) {
	svc := &RouteService{client: &stubDirections{}}
	if _, err := svc.OneWayDistance(context.Background(), "a", "b"); !errors.Is(err, ErrNoRoute) {
		t.Errorf("expected ErrNoRoute, got %v", err)
	}
}

func TestOneWayDistance_MissingPlaces(t *testing.T) {
	stub := &stubDirections{routes: routeOf(1000)}
	svc := &RouteService{client: stub}
	if _, err := svc.OneWayDistance(context.Background(), " ", "b"); !errors.Is(err, ErrMissingPlaces) {
		t.Errorf("expected ErrMissingPlaces, got %v", err)
	}
	if stub.req != nil {
		t.Errorf("maps api should not be called without both places")
	}
}

func TestOneWayDistance_APIError(t *testing.T) {
	apiErr := errors.New("OVER_QUERY_LIMIT")
	svc := &RouteService{client: &stubDirections{err: apiErr}}
	if _, err := svc.OneWayDistance(context.Background(), "a", "b"); !errors.Is(err, apiErr) {
		t.Errorf("expected wrapped api error, got %v", err)
	}
}
