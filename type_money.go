package estimate

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value bound to an explicit ISO 4217 currency code,
// used to present totals. Aggregation itself stays on raw float64 values;
// Money only enters the picture when a collaborator wants a display string,
// and the currency is always passed by that collaborator, never a global.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M builds a Money from a raw amount in major units. A non-finite amount
// collapses to zero.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a non-nil currency.
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's own formatter, rounded to the
// currency's fraction. This is the presentation-time rounding; totals keep
// full precision until here.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
