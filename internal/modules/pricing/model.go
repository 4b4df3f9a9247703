// README: Price table, fare model and cost breakdown for alteration quotes.
package pricing

import "errors"

// DefaultDistance is the one-way distance assumed when a caller has no distance source.
const DefaultDistance = 5.0

// ErrInvalidDistance is returned for negative or non-finite distances, and for
// distances whose fare is not finite.
var ErrInvalidDistance = errors.New("invalid distance")

// PriceEntry is a single keyword and the flat alteration fee it maps to.
type PriceEntry struct {
	Keyword string
	Price   float64
}

// PriceTable is checked in declaration order; the first matching keyword wins.
type PriceTable struct {
	Entries      []PriceEntry
	DefaultPrice float64
}

// DefaultPriceTable returns the fixed alteration price list.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Entries: []PriceEntry{
			{Keyword: "dress", Price: 50},
			{Keyword: "shirt", Price: 20},
			{Keyword: "pants", Price: 30},
			{Keyword: "jacket", Price: 60},
			{Keyword: "skirt", Price: 25},
		},
		DefaultPrice: 40,
	}
}

// TransportFareModel is a linear ride fare: base + distance + time.
type TransportFareModel struct {
	BaseFare            float64
	PerDistance         float64
	PerTime             float64
	SpeedFactor         float64 // time units per distance unit
	RoundTripMultiplier float64
}

// DefaultFareModel returns the fixed transport fare constants.
func DefaultFareModel() TransportFareModel {
	return TransportFareModel{
		BaseFare:            2.0,
		PerDistance:         1.5,
		PerTime:             0.5,
		SpeedFactor:         3,
		RoundTripMultiplier: 2,
	}
}

type EstimateRequest struct {
	ClothingItem string
	// DistanceOneWay falls back to DefaultDistance when nil.
	DistanceOneWay *float64
}

// CostBreakdown is always derived; recompute it instead of patching fields.
type CostBreakdown struct {
	ClothingCost  float64 `json:"clothing_cost"`
	TransportCost float64 `json:"transport_cost"`
	Total         float64 `json:"total"`
}

func newCostBreakdown(clothing, transport float64) CostBreakdown {
	return CostBreakdown{
		ClothingCost:  clothing,
		TransportCost: transport,
		Total:         clothing + transport,
	}
}
