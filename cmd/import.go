package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fundboard"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	format string
	path   string
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a spreadsheet or report export into a record book" }
func (*importCmd) Usage() string {
	return `fbd import [-format csv|json] [-path <jsonpath>] [-o <file>] <input file>

  Converts a CSV spreadsheet export or a JSON report export into the
  canonical JSONL book format. For JSON exports, -path selects the array
  of row objects out of the surrounding envelope.

Usage Examples:
# Convert a spreadsheet export into the default book file.
$ fbd import -o book.jsonl holdings.csv

# Pluck the rows out of a nested report export.
$ fbd import -format json -path '$.data.rows' -o book.jsonl report.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Input format: csv or json")
	f.StringVar(&c.path, "path", "$.rows", "jsonpath expression selecting the row array (json format only)")
	f.StringVar(&c.output, "o", "", "Output book file (default stdout)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var book *fundboard.Book
	switch c.format {
	case "csv":
		book, err = fundboard.ImportCSV(in)
	case "json":
		book, err = fundboard.ImportReportJSON(in, c.path)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or json)\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if n := book.CoercedValues(); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d numeric cell(s) missing or malformed, treated as 0\n", n)
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := fundboard.EncodeBook(out, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Successfully imported %d record(s) into %s\n", book.Len(), c.output)
	}
	return subcommands.ExitSuccess
}
