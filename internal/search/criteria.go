package search

import (
	"errors"
	"fmt"
	"math"
)

// AllZoning is the zoning sentinel that disables the zoning clause.
const AllZoning = "all"

var ErrInvalidCriteria = errors.New("invalid criteria")

// Range is an inclusive [Min, Max] bound.
type Range[T int64 | float64] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

func (r Range[T]) Contains(v T) bool { return v >= r.Min && v <= r.Max }

type Criteria struct {
	SearchTerm   string         `json:"search_term"`
	PriceRange   Range[int64]   `json:"price_range"`
	AcreageRange Range[float64] `json:"acreage_range"`
	Zoning       string         `json:"zoning"`
	MaxDistance  float64        `json:"max_distance"`
	QOZOnly      bool           `json:"qoz_only"`
}

// Slider limits of the dashboard filter panel.
const (
	PriceCeiling    int64   = 10_000_000
	PriceStep       int64   = 100_000
	AcreageCeiling  float64 = 30
	AcreageStep     float64 = 0.5
	DistanceCeiling float64 = 10
	DistanceStep    float64 = 0.1
)

// DefaultCriteria matches everything in the built-in catalog.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange:   Range[int64]{Min: 0, Max: PriceCeiling},
		AcreageRange: Range[float64]{Min: 0, Max: AcreageCeiling},
		Zoning:       AllZoning,
		MaxDistance:  DistanceCeiling,
	}
}

// Validate rejects non-finite bounds. Inverted ranges are allowed and match nothing.
func (c Criteria) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"acreage_range.min", c.AcreageRange.Min},
		{"acreage_range.max", c.AcreageRange.Max},
		{"max_distance", c.MaxDistance},
	}
	for _, ch := range checks {
		if math.IsNaN(ch.v) || math.IsInf(ch.v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidCriteria, ch.name)
		}
	}
	return nil
}
