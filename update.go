package estimate

// The mutation applier: each edit produces a new top-level snapshot in which
// exactly one item field changed. Untouched sections keep their original
// Items slice, so a consumer can detect change cheaply by comparing values.
//
// An edit referencing an unknown section or item id is a silent no-op: a
// stale edit racing a model reload is benign, not a programming error.

// UpdateQty returns a new snapshot with the quantity of one item replaced.
// The new value is accepted as-is; edits originate from already-typed input
// and bypass coercion.
func UpdateQty(sections []Section, sectionID, itemID string, qty float64) []Section {
	return updateItem(sections, sectionID, itemID, func(it Item) Item {
		it.Qty = qty
		return it
	})
}

// UpdateUnitCost returns a new snapshot with the unit cost of one item
// replaced. The value is in decimal currency units, not cents: cents only
// exist in raw documents, never in edits.
func UpdateUnitCost(sections []Section, sectionID, itemID string, unitCost float64) []Section {
	return updateItem(sections, sectionID, itemID, func(it Item) Item {
		it.UnitCost = unitCost
		return it
	})
}

func updateItem(sections []Section, sectionID, itemID string, apply func(Item) Item) []Section {
	next := make([]Section, len(sections))
	copy(next, sections)

	for i := range next {
		if next[i].ID != sectionID {
			continue
		}
		for j := range next[i].Items {
			if next[i].Items[j].ID != itemID {
				continue
			}
			items := make([]Item, len(next[i].Items))
			copy(items, next[i].Items)
			items[j] = apply(items[j])
			next[i].Items = items
			return next
		}
		// section matched but the item is gone: no-op
		return next
	}
	return next
}
