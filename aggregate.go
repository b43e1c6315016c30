package fundboard

import (
	"github.com/shopspring/decimal"
)

// This file is the aggregation engine: pure reductions over a record
// sequence. None of these functions mutate their input, and all of them are
// total: empty input yields a zero sum or an empty result, never an error.

// Group is one partition of a record sequence: all records sharing the same
// value for the grouping field, in their original relative order.
type Group struct {
	Key     string
	Records []Record
}

// AggregateRow is one row of a grouped summary: the group key, the sum of the
// value field across the group's members, and the member count.
//
// The row remembers which fields produced it, so its JSON form is
// self-describing: {"<groupField>": key, "<valueField>": sum, "count": n}.
type AggregateRow struct {
	GroupField Field
	Key        string
	ValueField Field
	Value      decimal.Decimal
	Count      int
}

// MarshalJSON implements the self-describing JSON form of an aggregate row.
func (r AggregateRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(string(r.GroupField), r.Key)
	w.Append(string(r.ValueField), r.Value.Round(2))
	w.Append("count", r.Count)
	return w.MarshalJSON()
}

// SumField returns the sum of the named numeric field across all records.
// An empty sequence sums to zero, and so does any field that is not numeric.
func SumField(records []Record, valueField Field) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Value(valueField))
	}
	return sum
}

// GroupBy partitions records by the exact value of groupField.
//
// The partition is stable: records keep their original relative order within
// each group. Groups are returned in first-occurrence order of their keys, as
// an ordered slice rather than a map: map iteration order would reorder the
// groups between runs.
func GroupBy(records []Record, groupField Field) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		key := r.Label(groupField)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Aggregate composes GroupBy and SumField: one AggregateRow per distinct
// value of groupField, carrying the sum of valueField and the member count.
// Rows follow first-occurrence order of the keys in the input sequence.
func Aggregate(records []Record, groupField, valueField Field) []AggregateRow {
	groups := GroupBy(records, groupField)
	rows := make([]AggregateRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, AggregateRow{
			GroupField: groupField,
			Key:        g.Key,
			ValueField: valueField,
			Value:      SumField(g.Records, valueField),
			Count:      len(g.Records),
		})
	}
	return rows
}

// TotalOf returns the grand total of valueField across all records.
//
// It is always called with the complete, unfiltered record set: the headline
// total of a dashboard must not react to drill-down filtering.
func TotalOf(records []Record, valueField Field) decimal.Decimal {
	return SumField(records, valueField)
}
