package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundboard"
	"github.com/etnz/fundboard/renderer"
	"github.com/google/subcommands"
)

// assetsCmd holds the flags for the 'assets' subcommand.
type assetsCmd struct {
	fundType string
	fund     string
	currency string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "display the asset rows of a sub-fund" }
func (*assetsCmd) Usage() string {
	return `fbd assets -t <fund type> -f <fund> [-c <currency>]

  Displays the leaf view: the individual asset rows of the selected
  sub-fund, with a total row over market value and equity.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fundType, "t", "", "Fund type the sub-fund belongs to")
	f.StringVar(&c.fund, "f", "", "Sub-fund to drill into")
	f.StringVar(&c.currency, "c", fundboard.DefaultCurrency, "Reporting currency for market values")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Selecting a sub-fund is only defined while a fund type is selected.
	if c.fundType == "" || c.fund == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <fund type> and -f <fund> are required")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := fundboard.NewDashboard(book)
	dashboard.SelectFundType(c.fundType)
	dashboard.SelectSubFund(c.fund)

	report := dashboard.Details()
	if len(report.Rows) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no records for fund %q\n", c.fund)
	}
	printMarkdown(renderer.DetailMarkdown(report))

	return subcommands.ExitSuccess
}
