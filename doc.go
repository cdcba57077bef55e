// Package estimate turns construction-estimate documents of inconsistent
// shape into one canonical, editable in-memory model with continuously
// recomputed totals.
//
// Producers of estimate documents disagree on almost everything: the key
// holding the section list, the names of item fields, whether numbers are
// encoded as numbers or strings, and whether monetary values are decimal
// amounts or integer cents. This package absorbs all of that at load time:
//   - Normalization: alias keys are resolved in a fixed priority order and
//     heterogeneous encodings are coerced into canonical types. Monetary
//     fields arrive as integer cents and are converted to decimal currency
//     units exactly once, during normalization.
//   - Aggregation: item totals, section subtotals and the grand total are
//     pure derivations over the canonical model, recomputed on demand.
//   - Editing: quantity and unit-cost edits produce a new model snapshot,
//     leaving every untouched section and item value-equal to the original.
//
// Normalization is total: a structurally missing or mistyped field degrades
// to a default, it never fails. The only error this package ever returns is
// a load failure, when a document cannot be retrieved or is not valid JSON.
//
// This package serves as the foundational logic for the `est` command-line
// tool, which renders estimates as markdown reports and applies edits.
package estimate
