package fundboard

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains the decoders and encoders for the record book formats.
// All of them share the same permissive-aggregation policy: a missing or
// non-numeric MV or Equity cell becomes zero and is counted, a missing
// identifying field fails the load.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jrecord is the readable version of the native book format: a JSONL file
// where each line is one record object. Numeric cells are kept raw so that a
// dirty cell can be coerced instead of failing the whole decode.
type jrecord struct {
	FundType string          `json:"FundType"`
	Fund     string          `json:"Fund"`
	Asset    string          `json:"Asset"`
	MV       json.RawMessage `json:"MV"`
	Equity   json.RawMessage `json:"Equity"`
}

// coerceRaw converts a raw JSON cell into a decimal, treating a missing,
// null or non-numeric cell as zero. It reports whether the cell was coerced.
func coerceRaw(raw json.RawMessage) (decimal.Decimal, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, true
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, true
	}
	return d, false
}

// DecodeBook decodes records from a stream of JSONL data, one record per
// line, and returns them as a Book in original line order.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jr jrecord
		if err := json.Unmarshal(line, &jr); err != nil {
			return nil, fmt.Errorf("cannot parse line for book format: %q: %w", string(line), err)
		}

		rec := Record{FundType: jr.FundType, Fund: jr.Fund, Asset: jr.Asset}
		var coerced bool
		rec.MV, coerced = coerceRaw(jr.MV)
		if coerced {
			book.coerced++
		}
		rec.Equity, coerced = coerceRaw(jr.Equity)
		if coerced {
			book.coerced++
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record %q: %w", string(line), err)
		}
		book.Append(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	return book, nil
}

// EncodeRecord writes a single record to 'w' in the canonical book format.
func EncodeRecord(w io.Writer, r Record) error {
	var jw jsonObjectWriter
	jw.Append(string(FundType), r.FundType)
	jw.Append(string(Fund), r.Fund)
	jw.Append(string(Asset), r.Asset)
	jw.Append(string(MV), r.MV)
	jw.Append(string(Equity), r.Equity)
	line, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode record %q: %w", r.Asset, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodeBook writes the book to 'w' in the canonical JSONL format, one record
// per line, preserving record order.
func EncodeBook(w io.Writer, b *Book) error {
	for _, r := range b.records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// ImportCSV imports records from a spreadsheet exported as CSV.
//
// The first row must be a header containing the five canonical columns
// (case-sensitive); extra columns are ignored. Row order is preserved.
func ImportCSV(r io.Reader) (*Book, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	columns := make(map[Field]int)
	for i, name := range header {
		columns[Field(strings.TrimSpace(name))] = i
	}
	for _, f := range []Field{FundType, Fund, Asset, MV, Equity} {
		if _, ok := columns[f]; !ok {
			return nil, fmt.Errorf("CSV header is missing the %q column", f)
		}
	}

	cell := func(row []string, f Field) string {
		i := columns[f]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	book := NewBook()
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}

		rec := Record{
			FundType: cell(row, FundType),
			Fund:     cell(row, Fund),
			Asset:    cell(row, Asset),
		}
		var coerced bool
		rec.MV, coerced = coerceCell(cell(row, MV))
		if coerced {
			book.coerced++
		}
		rec.Equity, coerced = coerceCell(cell(row, Equity))
		if coerced {
			book.coerced++
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record on CSV line %d: %w", line, err)
		}
		book.Append(rec)
	}
	return book, nil
}

// coerceCell converts a spreadsheet cell into a decimal, treating an empty or
// non-numeric cell as zero. It reports whether the cell was coerced.
func coerceCell(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true
	}
	return d, false
}

// ImportReportJSON imports records from a JSON report export.
//
// Fund-administration systems wrap the row array in arbitrary envelopes, so
// 'path' is a jsonpath expression selecting the array of row objects (for
// example "$.rows", or "$" when the document is the bare array).
func ImportReportJSON(r io.Reader, path string) (*Book, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON report: %w", err)
	}

	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select rows with path %q: %w", path, err)
	}
	rows, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q does not select an array of rows (got %T)", path, result)
	}

	book := NewBook()
	for i, item := range rows {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not an object (got %T)", i, item)
		}
		label := func(f Field) string {
			s, _ := obj[string(f)].(string)
			return s
		}
		rec := Record{
			FundType: label(FundType),
			Fund:     label(Fund),
			Asset:    label(Asset),
		}
		var coerced bool
		rec.MV, coerced = coerceAny(obj[string(MV)])
		if coerced {
			book.coerced++
		}
		rec.Equity, coerced = coerceAny(obj[string(Equity)])
		if coerced {
			book.coerced++
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record in row %d: %w", i, err)
		}
		book.Append(rec)
	}
	return book, nil
}

// coerceAny converts a decoded JSON value into a decimal, treating a missing
// or non-numeric value as zero. It reports whether the value was coerced.
func coerceAny(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, true
		}
		return d, false
	case string:
		return coerceCell(t)
	default:
		return decimal.Zero, true
	}
}
