// Package maps resolves one-way travel distances for transport fares.
package maps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"alterquote/internal/types"
)

const earthRadiusMiles = 3958.8

// CoordinateDistance treats origin and destination as "lat,lng" pairs and
// returns the great-circle distance in miles.
type CoordinateDistance struct{}

func (CoordinateDistance) OneWayDistance(_ context.Context, origin, destination string) (float64, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return 0, ErrMissingPlaces
	}
	a, err := ParsePoint(origin)
	if err != nil {
		return 0, err
	}
	b, err := ParsePoint(destination)
	if err != nil {
		return 0, err
	}
	return haversineMiles(a, b), nil
}

// ParsePoint parses "lat,lng" in decimal degrees.
func ParsePoint(s string) (types.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return types.Point{}, fmt.Errorf("%w: %q is not lat,lng", ErrMissingPlaces, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return types.Point{}, fmt.Errorf("%w: bad latitude in %q", ErrMissingPlaces, s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lng < -180 || lng > 180 {
		return types.Point{}, fmt.Errorf("%w: bad longitude in %q", ErrMissingPlaces, s)
	}
	return types.Point{Lat: lat, Lng: lng}, nil
}

func haversineMiles(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
