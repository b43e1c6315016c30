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

// fundsCmd holds the flags for the 'funds' subcommand.
type fundsCmd struct {
	fundType string
	currency string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "display market value by sub-fund within a fund type" }
func (*fundsCmd) Usage() string {
	return `fbd funds -t <fund type> [-c <currency>]

  Displays the second-level view: market value aggregated by sub-fund
  within the selected fund type.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fundType, "t", "", "Fund type to drill into")
	f.StringVar(&c.currency, "c", fundboard.DefaultCurrency, "Reporting currency for market values")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fundType == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <fund type> is required")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := fundboard.NewDashboard(book)
	dashboard.SelectFundType(c.fundType)

	report := dashboard.Funds()
	if len(report.Rows) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no records for fund type %q\n", c.fundType)
	}
	printMarkdown(renderer.FundsMarkdown(report))

	return subcommands.ExitSuccess
}
