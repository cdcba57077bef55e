package estimate

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// sectionListPaths are the tolerated locations of the section list, checked
// in order. The first present (non-null) key wins, even when the next one
// would have held a better value.
var sectionListPaths = []string{
	"$.section",
	"$.sections",
	"$.data.section",
	"$.data.sections",
}

// sectionList resolves the raw section list from the envelope. A key holding
// an explicit null counts as absent and falls through; a present key holding
// anything but a list wins the priority but yields an empty list.
func sectionList(envelope any) []any {
	for _, path := range sectionListPaths {
		v, err := jsonpath.Get(path, envelope)
		if err != nil || v == nil {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			return nil
		}
		return list
	}
	return nil
}

// BuildModel normalizes a raw estimate envelope (an already JSON-decoded
// document) into the canonical section model. It is deterministic and total:
// missing or mistyped fields degrade to defaults and the input order of
// sections and items is preserved exactly.
//
// The envelope is read-only input; BuildModel keeps no reference to it.
func BuildModel(envelope map[string]any) []Section {
	rawSections := sectionList(envelope)

	sections := make([]Section, 0, len(rawSections))
	for i, rs := range rawSections {
		r := asRaw(rs)
		sec := Section{
			ID:   r.stringOr("", "id", "section_id"),
			Name: r.stringOr(fmt.Sprintf("Section %d", i+1), "name", "title", "section_name"),
		}
		if sec.ID == "" {
			sec.ID = fmt.Sprintf("sec-%d", i+1)
		}

		items, _ := r.firstDefined("items")
		rawItems, _ := items.([]any)
		sec.Items = make([]Item, 0, len(rawItems))
		for j, ri := range rawItems {
			sec.Items = append(sec.Items, buildItem(asRaw(ri), i, j))
		}
		sections = append(sections, sec)
	}
	return sections
}

// buildItem normalizes one raw item at position j of section i.
func buildItem(r raw, i, j int) Item {
	it := Item{
		ID:       r.stringOr("", "id", "item_id"),
		Type:     r.stringOr("", "type", "item_type_display_name", "item_type_name"),
		Name:     r.stringOr("", "name", "item_name", "subject"),
		Unit:     r.stringOr("", "unit", "unit_name"),
		CostCode: r.stringOr("", "cost_code", "costCode", "cost_code_name"),
		Tax:      r.taxFlag(),
	}
	if it.ID == "" {
		it.ID = fmt.Sprintf("%d-%d", i+1, j+1)
	}
	if v, ok := r.firstDefined("qty", "quantity"); ok {
		it.Qty = finite(toNumber(v))
	}
	if v, ok := r.firstDefined("unit_cost", "unitCost", "modified_unit_cost"); ok {
		it.UnitCost = toCurrencyUnits(v)
	}
	return it
}
