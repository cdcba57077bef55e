package estimate

import (
	"math"
	"reflect"
	"testing"
)

func editableSections(t *testing.T) []Section {
	t.Helper()
	return []Section{
		{ID: "sec-1", Name: "Framing", Items: []Item{
			{ID: "1-1", Name: "Stud", Qty: 2, UnitCost: 5},
			{ID: "1-2", Name: "Plate", Qty: 1, UnitCost: 100},
		}},
		{ID: "sec-2", Name: "Roofing", Items: []Item{
			{ID: "2-1", Name: "Shingle", Qty: 10, UnitCost: 1.5},
		}},
	}
}

func TestUpdateQty(t *testing.T) {
	before := editableSections(t)
	after := UpdateQty(before, "sec-1", "1-1", 10)

	if after[0].Items[0].Qty != 10 {
		t.Errorf("qty = %v, want 10", after[0].Items[0].Qty)
	}
	// only the one field changed on the one item.
	if after[0].Items[0].UnitCost != 5 || after[0].Items[0].Name != "Stud" {
		t.Errorf("edit leaked into other fields: %+v", after[0].Items[0])
	}
	// the input snapshot is untouched.
	if before[0].Items[0].Qty != 2 {
		t.Errorf("input snapshot mutated: qty = %v", before[0].Items[0].Qty)
	}
	// every other item and section is value-equal.
	if !reflect.DeepEqual(after[0].Items[1], before[0].Items[1]) {
		t.Errorf("sibling item changed: %+v", after[0].Items[1])
	}
	if !reflect.DeepEqual(after[1], before[1]) {
		t.Errorf("untouched section changed: %+v", after[1])
	}
}

func TestUpdateUnitCost(t *testing.T) {
	before := editableSections(t)
	after := UpdateUnitCost(before, "sec-2", "2-1", 2.25)

	if after[1].Items[0].UnitCost != 2.25 {
		t.Errorf("unitCost = %v, want 2.25", after[1].Items[0].UnitCost)
	}
	if after[1].Items[0].Qty != 10 {
		t.Errorf("edit leaked into qty: %v", after[1].Items[0].Qty)
	}
	if before[1].Items[0].UnitCost != 1.5 {
		t.Errorf("input snapshot mutated: unitCost = %v", before[1].Items[0].UnitCost)
	}
}

func TestUpdateMiss(t *testing.T) {
	before := editableSections(t)

	testCases := []struct {
		name      string
		sectionID string
		itemID    string
	}{
		{"unknown section", "nonexistent", "x"},
		{"unknown item in known section", "sec-1", "9-9"},
		{"item of another section", "sec-1", "2-1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdateQty(before, tc.sectionID, tc.itemID, 5)
			if !reflect.DeepEqual(got, before) {
				t.Errorf("miss is not a no-op: %+v", got)
			}
		})
	}
}

func TestUpdateAcceptsAnyValue(t *testing.T) {
	// edits bypass coercion: negative and non-finite values are stored as-is,
	// the aggregator degrades instead of the applier filtering.
	sections := editableSections(t)

	sections = UpdateQty(sections, "sec-1", "1-1", -4)
	if got := sections[0].Items[0].Qty; got != -4 {
		t.Errorf("negative qty = %v, want -4", got)
	}
	if got := ItemTotal(sections[0].Items[0]); got != -20 {
		t.Errorf("negative total = %v, want -20", got)
	}

	sections = UpdateUnitCost(sections, "sec-1", "1-1", math.NaN())
	if got := sections[0].Items[0].UnitCost; !math.IsNaN(got) {
		t.Errorf("non-finite unitCost = %v, want NaN", got)
	}
}

func TestUpdateOnEmptyModel(t *testing.T) {
	got := UpdateQty(nil, "sec-1", "1-1", 5)
	if len(got) != 0 {
		t.Errorf("UpdateQty(nil, ...) = %+v, want empty", got)
	}
}
