package estimate

// The aggregator: three pure derivations over canonical state. No caching,
// no rounding (presentation rounds, see Money), no mutation of inputs.
// Identical state always yields identical totals.

// ItemTotal returns the total of one line item, qty times unit cost.
func ItemTotal(it Item) float64 {
	return it.Qty * it.UnitCost
}

// SectionSubtotal returns the sum of the item totals of a section.
func SectionSubtotal(s Section) float64 {
	var sum float64
	for _, it := range s.Items {
		sum += ItemTotal(it)
	}
	return sum
}

// GrandTotal returns the sum of all section subtotals.
func GrandTotal(sections []Section) float64 {
	var sum float64
	for _, s := range sections {
		sum += SectionSubtotal(s)
	}
	return sum
}
