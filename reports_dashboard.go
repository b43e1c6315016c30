package fundboard

// Dashboard projects a book of fund records and the current drill-down
// selection into the views a presentation layer needs.
//
// Every view is a pure function of (book, selection), recomputed on each
// call: recomputation over an in-memory book is cheap and deterministic, so
// there is deliberately no cache or invalidation layer. The selection is
// owned explicitly by the dashboard; the two Select mutators are the only
// mutation path.
type Dashboard struct {
	book      *Book
	selection Selection
}

// NewDashboard creates a dashboard over a loaded book, at the Top level.
func NewDashboard(book *Book) *Dashboard {
	return &Dashboard{book: book}
}

// Selection returns the current drill-down selection.
func (d *Dashboard) Selection() Selection { return d.selection }

// SelectFundType applies a fund-type selection event (see [Selection.SelectFundType]).
func (d *Dashboard) SelectFundType(value string) {
	d.selection = d.selection.SelectFundType(value)
}

// SelectSubFund applies a sub-fund selection event (see [Selection.SelectSubFund]).
func (d *Dashboard) SelectSubFund(value string) {
	d.selection = d.selection.SelectSubFund(value)
}

// TopLevel returns market value aggregated by fund type over the whole book.
func (d *Dashboard) TopLevel() []AggregateRow {
	return Aggregate(d.book.records, FundType, MV)
}

// SecondLevel returns market value aggregated by sub-fund within the selected
// fund type, or an empty result while no fund type is selected.
func (d *Dashboard) SecondLevel() []AggregateRow {
	if d.selection.FundType == "" {
		return nil
	}
	return Aggregate(d.filter(FundType, d.selection.FundType), Fund, MV)
}

// DetailRows returns the asset rows of the selected sub-fund in original
// record order, or an empty result while no sub-fund is selected. The rows
// are leaf records, not aggregates; the synthesized total row lives in
// [Dashboard.Details].
func (d *Dashboard) DetailRows() []Record {
	if d.selection.Fund == "" {
		return nil
	}
	return d.filter(Fund, d.selection.Fund)
}

// Total returns the headline total: market value summed over the complete,
// unfiltered book. It never reacts to the drill-down selection.
func (d *Dashboard) Total() Money {
	return M(TotalOf(d.book.records, MV), d.book.currency)
}

func (d *Dashboard) filter(f Field, value string) []Record {
	var filtered []Record
	for _, r := range d.book.records {
		if r.Label(f) == value {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// OverviewReport is the top-level view: AUM by fund type plus the headline total.
type OverviewReport struct {
	Book     string
	Currency string
	Rows     []AggregateRow
	Total    Money
}

// FundsReport is the second-level view: AUM by sub-fund within one fund type.
type FundsReport struct {
	Book     string
	Currency string
	FundType string
	Rows     []AggregateRow
	Total    Money // headline total of the whole book, not of the fund type
}

// DetailReport is the leaf view: the asset rows of one sub-fund, shown
// individually, plus a synthesized total row over the filtered set. The total
// row is labeled distinctly from data rows by the renderer.
type DetailReport struct {
	Book        string
	Currency    string
	FundType    string
	Fund        string
	Rows        []Record
	TotalMV     Money
	TotalEquity Money
}

// Overview builds the top-level report.
func (d *Dashboard) Overview() *OverviewReport {
	return &OverviewReport{
		Book:     d.book.name,
		Currency: d.book.currency,
		Rows:     d.TopLevel(),
		Total:    d.Total(),
	}
}

// Funds builds the second-level report, or nil while no fund type is selected.
func (d *Dashboard) Funds() *FundsReport {
	if d.selection.FundType == "" {
		return nil
	}
	return &FundsReport{
		Book:     d.book.name,
		Currency: d.book.currency,
		FundType: d.selection.FundType,
		Rows:     d.SecondLevel(),
		Total:    d.Total(),
	}
}

// Details builds the leaf report, or nil while no sub-fund is selected.
func (d *Dashboard) Details() *DetailReport {
	if d.selection.Fund == "" {
		return nil
	}
	rows := d.DetailRows()
	return &DetailReport{
		Book:        d.book.name,
		Currency:    d.book.currency,
		FundType:    d.selection.FundType,
		Fund:        d.selection.Fund,
		Rows:        rows,
		TotalMV:     M(SumField(rows, MV), d.book.currency),
		TotalEquity: M(SumField(rows, Equity), d.book.currency),
	}
}
