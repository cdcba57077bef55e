package estimate

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// toNumber coerces a decoded JSON value to a float64. Numbers pass through,
// numeric strings are parsed. Anything else, including an unparsable string,
// is absorbed as 0: normalization never fails on a bad field.
func toNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// toCurrencyUnits converts a raw monetary value, expressed in integer cents,
// to decimal currency units. The division by 100 is exact (decimal shift,
// not float division) and happens exactly once, here, at normalization time.
// Non-finite values yield 0.
func toCurrencyUnits(v any) float64 {
	n := toNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return decimal.NewFromFloat(n).Shift(-2).InexactFloat64()
}

// toBoolean coerces a decoded JSON value with standard truthiness rules:
// booleans pass through, numbers are true unless zero, strings are true
// unless empty. It is applied after alias resolution; the narrow
// apply_global_tax comparison lives in taxFlag, not here.
func toBoolean(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	}
	return v != nil
}

// finite returns n, or 0 when n is not a finite number. Canonical quantities
// and unit costs are always finite.
func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
