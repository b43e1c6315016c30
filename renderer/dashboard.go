// Package renderer builds the markdown views of a fund dashboard.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundboard"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the top-level view: AUM by fund type and the
// headline total. Values are in millions of the reporting currency.
func OverviewMarkdown(r *fundboard.OverviewReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(r.Book, "AUM by Fund Type"))
	doc.PlainText(fmt.Sprintf("Total AUM: %s", r.Total))

	doc.Table(aggregateTable("Fund Type", r.Rows, r.Currency))

	return doc.String()
}

// FundsMarkdown renders the second-level view: AUM by sub-fund within the
// selected fund type.
func FundsMarkdown(r *fundboard.FundsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(r.Book, fmt.Sprintf("%s Funds", r.FundType)))
	doc.PlainText(fmt.Sprintf("Total AUM: %s", r.Total))

	doc.Table(aggregateTable("Fund", r.Rows, r.Currency))

	return doc.String()
}

// DetailMarkdown renders the leaf view: the asset rows of the selected
// sub-fund plus the synthesized total row, set in bold to stand apart from
// the data rows.
func DetailMarkdown(r *fundboard.DetailReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(r.Book, fmt.Sprintf("Fund %s Assets", r.Fund)))

	rows := make([][]string, 0, len(r.Rows)+1)
	for _, rec := range r.Rows {
		rows = append(rows, []string{
			rec.Asset,
			fundboard.M(rec.MV, r.Currency).String(),
			fundboard.M(rec.Equity, r.Currency).String(),
		})
	}
	rows = append(rows, []string{
		md.Bold("Total"),
		md.Bold(r.TotalMV.String()),
		md.Bold(r.TotalEquity.String()),
	})

	doc.Table(md.TableSet{
		Header: []string{"Asset", "MV", "Equity"},
		Rows:   rows,
	})

	return doc.String()
}

// aggregateTable lays out aggregate rows as key, market value, count.
func aggregateTable(keyHeader string, rows []fundboard.AggregateRow, currency string) md.TableSet {
	table := md.TableSet{
		Header: []string{keyHeader, "MV", "Assets"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Key,
			fundboard.M(row.Value, currency).String(),
			fmt.Sprintf("%d", row.Count),
		})
	}
	return table
}

func title(book, view string) string {
	if book == "" {
		return view
	}
	return fmt.Sprintf("%s: %s", book, view)
}
