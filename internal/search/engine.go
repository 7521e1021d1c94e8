package search

import (
	"sort"
	"strings"

	"github.com/yourorg/qoz-dashboard/catalog"
)

// Stats summarises a filtered property set.
type Stats struct {
	Total        int     `json:"total"`
	QOZEligible  int     `json:"qoz_eligible"`
	AvgPrice     float64 `json:"avg_price"`
	TotalAcreage float64 `json:"total_acreage"`
}

type Result struct {
	Properties []catalog.Property `json:"properties"`
	Stats      Stats              `json:"stats"`
}

// Matches reports whether p satisfies every clause of c.
func Matches(p catalog.Property, c Criteria) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Address), term) &&
			!strings.Contains(strings.ToLower(p.TractID), term) {
			return false
		}
	}
	if !c.PriceRange.Contains(p.Price) {
		return false
	}
	if !c.AcreageRange.Contains(p.Acreage) {
		return false
	}
	// zoning is compared case-sensitively, unlike the search term
	if c.Zoning != AllZoning && c.Zoning != p.Zoning {
		return false
	}
	if p.Distance > c.MaxDistance {
		return false
	}
	if c.QOZOnly && !p.QOZEligible {
		return false
	}
	return true
}

// Filter returns the matching properties in input order. The result is never nil.
func Filter(props []catalog.Property, c Criteria) []catalog.Property {
	out := make([]catalog.Property, 0, len(props))
	for _, p := range props {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func Aggregate(filtered []catalog.Property) Stats {
	var st Stats
	var priceSum float64
	for _, p := range filtered {
		st.Total++
		if p.QOZEligible {
			st.QOZEligible++
		}
		priceSum += float64(p.Price)
		st.TotalAcreage += p.Acreage
	}
	if st.Total > 0 {
		st.AvgPrice = priceSum / float64(st.Total)
	}
	return st
}

func Run(props []catalog.Property, c Criteria) Result {
	filtered := Filter(props, c)
	return Result{Properties: filtered, Stats: Aggregate(filtered)}
}

// ZoningTags lists AllZoning followed by every distinct zoning tag in props, sorted.
func ZoningTags(props []catalog.Property) []string {
	seen := make(map[string]struct{}, len(props))
	tags := make([]string, 0, len(props))
	for _, p := range props {
		if _, ok := seen[p.Zoning]; ok || p.Zoning == AllZoning {
			continue
		}
		seen[p.Zoning] = struct{}{}
		tags = append(tags, p.Zoning)
	}
	sort.Strings(tags)
	return append([]string{AllZoning}, tags...)
}
