package fundboard

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// rec builds a record the way the worked examples write them.
func rec(fundType, fund, asset string, mv, equity float64) Record {
	return Record{
		FundType: fundType,
		Fund:     fund,
		Asset:    asset,
		MV:       decimal.NewFromFloat(mv),
		Equity:   decimal.NewFromFloat(equity),
	}
}

func sampleRecords() []Record {
	return []Record{
		rec("Equity", "A", "Stock1", 10, 8),
		rec("Equity", "B", "Stock2", 5, 3),
		rec("Fixed Income", "C", "Bond1", 20, 0),
	}
}

func TestSumField(t *testing.T) {
	records := sampleRecords()

	if got := SumField(records, MV); !got.Equal(decimal.NewFromInt(35)) {
		t.Errorf("SumField(MV) = %s, want 35", got)
	}
	if got := SumField(records, Equity); !got.Equal(decimal.NewFromInt(11)) {
		t.Errorf("SumField(Equity) = %s, want 11", got)
	}
	if got := SumField(nil, MV); !got.IsZero() {
		t.Errorf("SumField(empty) = %s, want 0", got)
	}
	// a non-numeric field contributes zero, never an error
	if got := SumField(records, FundType); !got.IsZero() {
		t.Errorf("SumField(FundType) = %s, want 0", got)
	}
}

func TestGroupBy(t *testing.T) {
	records := sampleRecords()
	groups := GroupBy(records, FundType)

	if len(groups) != 2 {
		t.Fatalf("GroupBy() returned %d groups, want 2", len(groups))
	}
	if groups[0].Key != "Equity" || groups[1].Key != "Fixed Income" {
		t.Errorf("group keys = [%s %s], want [Equity, Fixed Income]", groups[0].Key, groups[1].Key)
	}
	// stable partition: original relative order within the group
	if groups[0].Records[0].Asset != "Stock1" || groups[0].Records[1].Asset != "Stock2" {
		t.Errorf("Equity group order = [%s %s], want [Stock1 Stock2]",
			groups[0].Records[0].Asset, groups[0].Records[1].Asset)
	}

	if got := GroupBy(nil, FundType); len(got) != 0 {
		t.Errorf("GroupBy(empty) returned %d groups, want 0", len(got))
	}
}

func TestGroupByFirstOccurrenceOrder(t *testing.T) {
	// interleaved keys: iteration over a plain map would not preserve this
	records := []Record{
		rec("T", "B", "b1", 1, 0),
		rec("T", "A", "a1", 1, 0),
		rec("T", "B", "b2", 1, 0),
		rec("T", "C", "c1", 1, 0),
		rec("T", "A", "a2", 1, 0),
	}
	groups := GroupBy(records, Fund)

	want := []string{"B", "A", "C"}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Fatalf("group %d key = %q, want %q (first-occurrence order)", i, g.Key, want[i])
		}
	}
}

func TestAggregate(t *testing.T) {
	records := sampleRecords()
	rows := Aggregate(records, FundType, MV)

	want := []struct {
		key   string
		sum   int64
		count int
	}{
		{"Equity", 15, 2},
		{"Fixed Income", 20, 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("Aggregate() returned %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		row := rows[i]
		if row.Key != w.key || !row.Value.Equal(decimal.NewFromInt(w.sum)) || row.Count != w.count {
			t.Errorf("row %d = {%s %s %d}, want {%s %d %d}", i, row.Key, row.Value, row.Count, w.key, w.sum, w.count)
		}
		if row.GroupField != FundType || row.ValueField != MV {
			t.Errorf("row %d fields = {%s %s}, want {FundType MV}", i, row.GroupField, row.ValueField)
		}
	}

	if got := Aggregate(nil, FundType, MV); len(got) != 0 {
		t.Errorf("Aggregate(empty) returned %d rows, want 0", len(got))
	}
}

func TestAggregateCountsEveryRecordOnce(t *testing.T) {
	records := sampleRecords()
	total := 0
	for _, row := range Aggregate(records, Fund, MV) {
		total += row.Count
	}
	if total != len(records) {
		t.Errorf("sum of counts = %d, want %d", total, len(records))
	}
}

func TestAggregateIsTotalPreserving(t *testing.T) {
	records := sampleRecords()
	sum := decimal.Zero
	for _, row := range Aggregate(records, FundType, MV) {
		sum = sum.Add(row.Value)
	}
	if total := TotalOf(records, MV); !sum.Equal(total) {
		t.Errorf("sum of aggregate rows = %s, TotalOf = %s", sum, total)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := make([]Record, len(records))
	copy(before, records)

	Aggregate(records, FundType, MV)
	SumField(records, Equity)
	GroupBy(records, Fund)

	if !reflect.DeepEqual(records, before) {
		t.Error("aggregation mutated its input")
	}
}

func TestAggregateRowMarshalJSON(t *testing.T) {
	rows := Aggregate(sampleRecords(), FundType, MV)

	got, err := json.Marshal(rows[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// self-describing: keyed by the field names that produced the row
	want := `{"FundType":"Equity","MV":15,"count":2}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestTotalOf(t *testing.T) {
	if got := TotalOf(sampleRecords(), MV); !got.Equal(decimal.NewFromInt(35)) {
		t.Errorf("TotalOf(MV) = %s, want 35", got)
	}
	if got := TotalOf(nil, MV); !got.IsZero() {
		t.Errorf("TotalOf(empty) = %s, want 0", got)
	}
}
