// Package fundboard turns a flat book of investment-fund records into a
// two-level drill-down dashboard: market values aggregated by fund type,
// then by sub-fund, down to individual asset rows.
//
// The package is organized around three small parts:
//
//   - the aggregation engine ([SumField], [GroupBy], [Aggregate], [TotalOf]),
//     pure reductions over a record sequence;
//   - the [Selection] state machine that governs which drill-down level is
//     visible;
//   - the [Dashboard] projection that combines a [Book] and a [Selection]
//     into the three views a presentation layer needs.
//
// Records are immutable once loaded; every view is recomputed on demand from
// the book and the current selection, so identical inputs always produce
// identical outputs.
package fundboard
