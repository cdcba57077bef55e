package estimate

// Item is one canonical line item of an estimate section.
//
// An Item is created once during normalization. Only Qty and UnitCost are
// ever changed afterwards, through UpdateQty and UpdateUnitCost; the ID is
// immutable and unique within its section.
type Item struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost"` // decimal currency units, cents already divided out
	Tax      bool    `json:"tax"`
	CostCode string  `json:"costCode"`
}

// Section is one canonical section of an estimate, holding its items in
// the order the source document listed them. That order is meaningful
// (display and report order) and is never permuted.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}
