package session

import (
	"context"
	"errors"
	"time"

	"github.com/yourorg/qoz-dashboard/internal/search"
)

var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 30 * time.Minute

// State is one visitor's dashboard state: the filter criteria and whether the
// filter panel is open.
type State struct {
	ID          string          `json:"id"`
	Criteria    search.Criteria `json:"criteria"`
	ShowFilters bool            `json:"show_filters"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewState(id string, now time.Time) State {
	return State{ID: id, Criteria: search.DefaultCriteria(), UpdatedAt: now}
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	SearchTerm  *string  `json:"search_term,omitempty"`
	PriceMin    *int64   `json:"price_min,omitempty"`
	PriceMax    *int64   `json:"price_max,omitempty"`
	AcreageMin  *float64 `json:"acreage_min,omitempty"`
	AcreageMax  *float64 `json:"acreage_max,omitempty"`
	Zoning      *string  `json:"zoning,omitempty"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
	QOZOnly     *bool    `json:"qoz_only,omitempty"`
	ShowFilters *bool    `json:"show_filters,omitempty"`

	// ToggleFilters flips the panel after ShowFilters is applied.
	ToggleFilters bool `json:"toggle_filters,omitempty"`
}

func (p Patch) Empty() bool { return p == Patch{} }

// Criteria returns base with the patch's criteria fields applied.
func (p Patch) Criteria(base search.Criteria) search.Criteria {
	c := base
	if p.SearchTerm != nil {
		c.SearchTerm = *p.SearchTerm
	}
	if p.PriceMin != nil {
		c.PriceRange.Min = *p.PriceMin
	}
	if p.PriceMax != nil {
		c.PriceRange.Max = *p.PriceMax
	}
	if p.AcreageMin != nil {
		c.AcreageRange.Min = *p.AcreageMin
	}
	if p.AcreageMax != nil {
		c.AcreageRange.Max = *p.AcreageMax
	}
	if p.Zoning != nil {
		c.Zoning = *p.Zoning
	}
	if p.MaxDistance != nil {
		c.MaxDistance = *p.MaxDistance
	}
	if p.QOZOnly != nil {
		c.QOZOnly = *p.QOZOnly
	}
	return c
}

// Apply is the only way state changes. It commits nothing when the resulting
// criteria are invalid.
func (s *State) Apply(p Patch, now time.Time) error {
	c := p.Criteria(s.Criteria)
	if err := c.Validate(); err != nil {
		return err
	}
	s.Criteria = c
	if p.ShowFilters != nil {
		s.ShowFilters = *p.ShowFilters
	}
	if p.ToggleFilters {
		s.ShowFilters = !s.ShowFilters
	}
	s.UpdatedAt = now
	return nil
}

// Store keeps session state between requests.
type Store interface {
	Create(ctx context.Context) (State, error)
	Get(ctx context.Context, id string) (State, error)
	Update(ctx context.Context, id string, p Patch) (State, error)
	Delete(ctx context.Context, id string) error
}
