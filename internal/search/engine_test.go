package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/qoz-dashboard/catalog"
)

func commercialLot() catalog.Property {
	return catalog.Property{
		ID:          "p1",
		Title:       "Alpha Commercial Lot",
		Address:     "1 Main St, Alpharetta, GA",
		Price:       2_000_000,
		Acreage:     5,
		Distance:    3,
		Zoning:      "Commercial",
		QOZEligible: true,
		TractID:     "13121011634",
	}
}

func scenarioCriteria() Criteria {
	return Criteria{
		PriceRange:   Range[int64]{Min: 0, Max: 3_000_000},
		AcreageRange: Range[float64]{Min: 0, Max: 10},
		MaxDistance:  5,
		Zoning:       AllZoning,
		QOZOnly:      true,
	}
}

func TestMatches_Scenario(t *testing.T) {
	p := commercialLot()
	c := scenarioCriteria()
	require.True(t, Matches(p, c))

	p.QOZEligible = false
	require.False(t, Matches(p, c))

	c.QOZOnly = false
	require.True(t, Matches(p, c))
}

func TestMatches_SearchIsCaseInsensitive(t *testing.T) {
	p := commercialLot()
	p.Title = "the alpha parcel"
	c := DefaultCriteria()

	for _, term := range []string{"ALPHA", "Alpha", "alpha", "PARCEL"} {
		c.SearchTerm = term
		assert.True(t, Matches(p, c), term)
	}

	c.SearchTerm = "main st"
	assert.True(t, Matches(p, c), "address match")

	c.SearchTerm = "011634"
	assert.True(t, Matches(p, c), "tract match")

	c.SearchTerm = "zulu"
	assert.False(t, Matches(p, c))

	c.SearchTerm = "Commercial"
	p.Title = "Lot"
	assert.False(t, Matches(p, c), "zoning is not a search field")
}

func TestMatches_BoundsAreInclusive(t *testing.T) {
	p := commercialLot()
	c := DefaultCriteria()

	c.PriceRange = Range[int64]{Min: 2_000_000, Max: 2_000_000}
	c.AcreageRange = Range[float64]{Min: 5, Max: 5}
	c.MaxDistance = 3
	require.True(t, Matches(p, c))

	c.PriceRange.Max = 1_999_999
	require.False(t, Matches(p, c))
	c.PriceRange.Max = 2_000_000

	c.AcreageRange.Min = 5.5
	require.False(t, Matches(p, c))
	c.AcreageRange.Min = 5

	c.MaxDistance = 2.9
	require.False(t, Matches(p, c))
}

func TestMatches_ZoningIsCaseSensitive(t *testing.T) {
	p := commercialLot()
	c := DefaultCriteria()

	c.Zoning = "Commercial"
	assert.True(t, Matches(p, c))
	c.Zoning = "commercial"
	assert.False(t, Matches(p, c))
	c.Zoning = "Residential"
	assert.False(t, Matches(p, c))
}

func TestMatches_InvertedRangeMatchesNothing(t *testing.T) {
	c := DefaultCriteria()
	c.PriceRange = Range[int64]{Min: 5_000_000, Max: 1_000_000}
	assert.Empty(t, Filter(catalog.MockProperties(), c))
}

func TestFilter_IsOrderedSubset(t *testing.T) {
	all := catalog.MockProperties()
	c := DefaultCriteria()
	c.QOZOnly = true

	got := Filter(all, c)
	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), len(all))

	// every result appears in the input, in the same relative order
	j := 0
	for _, p := range got {
		for j < len(all) && all[j].ID != p.ID {
			j++
		}
		require.Less(t, j, len(all), "result %s not in input order", p.ID)
		j++
	}
}

func TestFilter_DefaultsMatchWholeCatalog(t *testing.T) {
	all := catalog.MockProperties()
	assert.Len(t, Filter(all, DefaultCriteria()), len(all))
}

func TestFilter_NoMatchIsEmptyNotNil(t *testing.T) {
	c := DefaultCriteria()
	c.SearchTerm = "no such property anywhere"
	got := Filter(catalog.MockProperties(), c)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilter_Monotonic(t *testing.T) {
	all := catalog.MockProperties()

	narrow := DefaultCriteria()
	narrow.PriceRange = Range[int64]{Min: 1_000_000, Max: 4_000_000}
	narrow.AcreageRange = Range[float64]{Min: 2, Max: 10}
	narrow.MaxDistance = 4
	narrow.Zoning = "Commercial"
	narrow.QOZOnly = true

	widenings := map[string]func(c *Criteria){
		"price min":   func(c *Criteria) { c.PriceRange.Min = 0 },
		"price max":   func(c *Criteria) { c.PriceRange.Max = PriceCeiling },
		"acreage min": func(c *Criteria) { c.AcreageRange.Min = 0 },
		"acreage max": func(c *Criteria) { c.AcreageRange.Max = AcreageCeiling },
		"distance":    func(c *Criteria) { c.MaxDistance = DistanceCeiling },
		"zoning all":  func(c *Criteria) { c.Zoning = AllZoning },
		"qoz off":     func(c *Criteria) { c.QOZOnly = false },
	}
	base := len(Filter(all, narrow))
	for name, widen := range widenings {
		wide := narrow
		widen(&wide)
		assert.GreaterOrEqual(t, len(Filter(all, wide)), base, name)
	}
}

func TestAggregate(t *testing.T) {
	props := []catalog.Property{
		{ID: "a", Price: 1_000_000, Acreage: 1.5, QOZEligible: true},
		{ID: "b", Price: 3_000_000, Acreage: 2.25},
		{ID: "c", Price: 2_000_000, Acreage: 0.25, QOZEligible: true},
	}
	st := Aggregate(props)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.QOZEligible)
	assert.InDelta(t, 2_000_000, st.AvgPrice, 1e-9)
	assert.InDelta(t, 4.0, st.TotalAcreage, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	st := Aggregate(nil)
	assert.Equal(t, Stats{}, st)
	assert.False(t, math.IsNaN(st.AvgPrice))
	assert.Zero(t, st.AvgPrice)
}

func TestRun_TotalAcreageMatchesPredicate(t *testing.T) {
	all := catalog.MockProperties()
	c := DefaultCriteria()
	c.MaxDistance = 4
	c.Zoning = "Residential"

	var want float64
	var n int
	for _, p := range all {
		if Matches(p, c) {
			want += p.Acreage
			n++
		}
	}
	res := Run(all, c)
	assert.Equal(t, n, res.Stats.Total)
	assert.Len(t, res.Properties, n)
	assert.InDelta(t, want, res.Stats.TotalAcreage, 1e-9)
}

func TestZoningTags(t *testing.T) {
	props := []catalog.Property{
		{ID: "1", Zoning: "Commercial"},
		{ID: "2", Zoning: "Residential"},
		{ID: "3", Zoning: "Commercial"},
	}
	assert.Equal(t, []string{"all", "Commercial", "Residential"}, ZoningTags(props))
	assert.Equal(t, []string{"all"}, ZoningTags(nil))
}

func TestZoningTags_IgnoresFilters(t *testing.T) {
	all := catalog.MockProperties()
	tags := ZoningTags(all)
	assert.Equal(t, []string{"all", "Agricultural", "Commercial", "Industrial", "Mixed-Use", "Residential"}, tags)
}

func TestCriteriaValidate(t *testing.T) {
	require.NoError(t, DefaultCriteria().Validate())

	c := DefaultCriteria()
	c.MaxDistance = math.NaN()
	require.ErrorIs(t, c.Validate(), ErrInvalidCriteria)

	c = DefaultCriteria()
	c.AcreageRange.Max = math.Inf(1)
	require.ErrorIs(t, c.Validate(), ErrInvalidCriteria)

	c = DefaultCriteria()
	c.PriceRange = Range[int64]{Min: 10, Max: 1}
	require.NoError(t, c.Validate())
}
