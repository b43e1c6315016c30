package fundboard

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultCurrency is the reporting currency of a book that does not declare one.
const DefaultCurrency = "USD"

// Book is an ordered, immutable collection of fund records.
//
// Order matters: the aggregation views present group keys in first-occurrence
// order, and detail views present asset rows in original record order, so a
// book preserves exactly the sequence in which records were loaded.
type Book struct {
	records  []Record
	name     string
	currency string
	coerced  int // numeric cells silently coerced to zero at load time
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{currency: DefaultCurrency}
}

// Append adds records to the book, preserving their order.
// It is meant for load time only; a book is treated as immutable afterwards.
func (b *Book) Append(records ...Record) *Book {
	b.records = append(b.records, records...)
	return b
}

// Records returns a copy of the book's records, in original order.
func (b *Book) Records() []Record { return slices.Clone(b.records) }

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Name returns the book's name, derived from its file path at load time.
func (b *Book) Name() string { return b.name }

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.currency }

// SetCurrency sets the reporting currency used to format the book's values.
func (b *Book) SetCurrency(cur string) { b.currency = cur }

// CoercedValues returns the number of numeric cells that were missing or
// non-numeric and silently coerced to zero while loading.
//
// The coercion itself is deliberate policy; the count exists so a caller can
// surface a data-quality warning instead of reporting a dirty cell as a
// silent zero.
func (b *Book) CoercedValues() int { return b.coerced }

// LoadBook opens and decodes a single record book, dispatching on the file
// extension: ".jsonl" for the native book format, ".csv" for a spreadsheet
// export. The book's name is the file name without its extension.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	var book *Book
	switch ext := filepath.Ext(path); ext {
	case ".jsonl":
		book, err = DecodeBook(f)
	case ".csv":
		book, err = ImportCSV(f)
	default:
		return nil, fmt.Errorf("unsupported book format %q (want .jsonl or .csv)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	book.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return book, nil
}

// FindBooks discovers record books (.jsonl files) under a directory.
// A book name is its relative path from the root, without the extension.
// If query is empty all books are returned, otherwise only the book with
// that exact name.
func FindBooks(root, query string) ([]string, error) {
	var books []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".jsonl")
		if query == "" || name == query {
			books = append(books, p)
		}
		return nil
	})
	return books, err
}
