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

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	currency string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display AUM aggregated by fund type" }
func (*overviewCmd) Usage() string {
	return `fbd overview [-c <currency>]

  Displays the top-level view: market value aggregated by fund type,
  with the headline total over the whole book.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", fundboard.DefaultCurrency, "Reporting currency for market values")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := fundboard.NewDashboard(book)
	printMarkdown(renderer.OverviewMarkdown(dashboard.Overview()))

	return subcommands.ExitSuccess
}
