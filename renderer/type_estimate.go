package renderer

import (
	"math"
	"strconv"

	"github.com/etnz/estimate"
)

// Estimate is the view model consumed by the estimate report templates.
// All monetary fields are pre-formatted strings in the currency the caller
// chose; the core never picks a currency on its own.
type Estimate struct {
	Title      string
	GrandTotal string
	Sections   []SectionView
}

// SectionView is one section block of the report.
type SectionView struct {
	ID       string
	Name     string
	Subtotal string
	Items    []ItemView
}

// ItemView is one table row.
type ItemView struct {
	ID       string
	Type     string
	Name     string
	Qty      string
	UnitCost string
	Unit     string
	Total    string
	Tax      string
	CostCode string
}

// NewEstimate builds the report view for a canonical model, formatting all
// monetary values with the given ISO 4217 currency code.
func NewEstimate(title string, sections []estimate.Section, currency string) *Estimate {
	e := &Estimate{
		Title:      title,
		GrandTotal: estimate.M(estimate.GrandTotal(sections), currency).String(),
	}
	for _, s := range sections {
		sv := SectionView{
			ID:       s.ID,
			Name:     s.Name,
			Subtotal: estimate.M(estimate.SectionSubtotal(s), currency).String(),
		}
		for _, it := range s.Items {
			sv.Items = append(sv.Items, ItemView{
				ID:       it.ID,
				Type:     it.Type,
				Name:     it.Name,
				Qty:      formatQty(it.Qty),
				UnitCost: estimate.M(it.UnitCost, currency).String(),
				Unit:     it.Unit,
				Total:    estimate.M(estimate.ItemTotal(it), currency).String(),
				Tax:      taxMark(it.Tax),
				CostCode: it.CostCode,
			})
		}
		e.Sections = append(e.Sections, sv)
	}
	return e
}

func formatQty(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return "0"
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func taxMark(taxed bool) string {
	if taxed {
		return "tax"
	}
	return ""
}
