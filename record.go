package fundboard

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names a column of the record book.
//
// The names are fixed and case-sensitive: they are the property names used in
// every external format (JSONL book, CSV export, JSON report export) and the
// keys under which [AggregateRow] marshals its results.
type Field string

const (
	// FundType is the top-level category of a record (e.g. "Equity").
	FundType Field = "FundType"
	// Fund is the sub-fund a record belongs to.
	Fund Field = "Fund"
	// Asset is the name of the individual asset.
	Asset Field = "Asset"
	// MV is the market value of a record, in millions.
	MV Field = "MV"
	// Equity is the equity value of a record, in millions.
	Equity Field = "Equity"
)

// Record is a single asset row of the book.
//
// Records are created at load time and never mutated afterwards. A missing or
// non-numeric MV or Equity cell is coerced to zero by the decoders (see
// [DecodeBook]), never rejected: a dirty cell must not crash a financial
// display.
type Record struct {
	FundType string
	Fund     string
	Asset    string
	MV       decimal.Decimal
	Equity   decimal.Decimal
}

// Value returns the record's numeric field f.
// Any field that is not numeric contributes zero.
func (r Record) Value(f Field) decimal.Decimal {
	switch f {
	case MV:
		return r.MV
	case Equity:
		return r.Equity
	default:
		return decimal.Zero
	}
}

// Label returns the record's string field f, or "" for a numeric field.
func (r Record) Label(f Field) string {
	switch f {
	case FundType:
		return r.FundType
	case Fund:
		return r.Fund
	case Asset:
		return r.Asset
	default:
		return ""
	}
}

// Validate checks that the identifying fields are present.
//
// Numeric fields are deliberately not validated: the permissive coercion
// policy already turned dirty cells into zero.
func (r Record) Validate() error {
	if r.FundType == "" {
		return fmt.Errorf("record %q: missing %s", r.Asset, FundType)
	}
	if r.Fund == "" {
		return fmt.Errorf("record %q: missing %s", r.Asset, Fund)
	}
	if r.Asset == "" {
		return fmt.Errorf("record in fund %q: missing %s", r.Fund, Asset)
	}
	return nil
}
