// Package cmd implements the CLI application to browse a fund dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundboard"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&overviewCmd{}, "views")
	c.Register(&fundsCmd{}, "views")
	c.Register(&assetsCmd{}, "views")
	c.Register(&browseCmd{}, "views")

	c.Register(&importCmd{}, "book")
	c.Register(&insightCmd{}, "analysis")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the record book file (JSONL or CSV format)")

// LoadBook loads the application record book, applies the reporting currency,
// and surfaces a data-quality warning for coerced cells.
func LoadBook(currency string) (*fundboard.Book, error) {
	book, err := fundboard.LoadBook(*bookFile)
	if err != nil {
		return nil, err
	}
	if currency != "" {
		book.SetCurrency(currency)
	}
	if n := book.CoercedValues(); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d numeric cell(s) missing or malformed, treated as 0\n", n)
	}
	return book, nil
}
