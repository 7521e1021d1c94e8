package httpapi

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/qoz-dashboard/internal/session"
)

// ParsePatch reads criteria fields from query or form values. Absent keys stay
// nil; malformed numbers are an error rather than silently ignored.
func ParsePatch(q url.Values) (session.Patch, error) {
	var p session.Patch
	if q.Has("search_term") {
		v := q.Get("search_term")
		p.SearchTerm = &v
	} else if q.Has("q") {
		v := q.Get("q")
		p.SearchTerm = &v
	}
	if v := q.Get("zoning"); v != "" {
		p.Zoning = &v
	}
	var err error
	if p.PriceMin, err = priceParam(q, "price_min", math.Ceil); err != nil {
		return p, err
	}
	if p.PriceMax, err = priceParam(q, "price_max", math.Floor); err != nil {
		return p, err
	}
	if p.AcreageMin, err = floatParam(q, "acreage_min"); err != nil {
		return p, err
	}
	if p.AcreageMax, err = floatParam(q, "acreage_max"); err != nil {
		return p, err
	}
	if p.MaxDistance, err = floatParam(q, "max_distance"); err != nil {
		return p, err
	}
	if v := q.Get("qoz_only"); v != "" {
		b, ok := parseBool(v)
		if !ok {
			return p, fmt.Errorf("qoz_only: %q is not a boolean", v)
		}
		p.QOZOnly = &b
	}
	return p, nil
}

// priceParam reads a whole-dollar bound. Fractional input is rounded inward
// with round (math.Ceil for a minimum, math.Floor for a maximum).
func priceParam(q url.Values, key string, round func(float64) float64) (*int64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// range inputs can post "2500000.0"
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return nil, fmt.Errorf("%s: %q is not a number", key, v)
		}
		f = round(f)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, fmt.Errorf("%s: %q is out of range", key, v)
		}
		i = int64(f)
	}
	return &i, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", key, v)
	}
	return &f, nil
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
