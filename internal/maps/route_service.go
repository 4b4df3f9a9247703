package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

const metresPerMile = 1609.344

var (
	ErrNoRoute       = errors.New("no route found")
	ErrMissingPlaces = errors.New("origin and destination are required")
)

// DistanceSource resolves the one-way travel distance, in miles, between two places.
type DistanceSource interface {
	OneWayDistance(ctx context.Context, origin, destination string) (float64, error)
}

type directionsClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client directionsClient
	region string
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, region: "GB"}, nil
}

// OneWayDistance returns the driving distance of the first route leg in miles.
func (s *RouteService) OneWayDistance(ctx context.Context, origin, destination string) (float64, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return 0, ErrMissingPlaces
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return float64(leg.Distance.Meters) / metresPerMile, nil
}
