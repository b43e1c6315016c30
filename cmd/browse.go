package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/fundboard"
	"github.com/etnz/fundboard/renderer"
	"github.com/google/subcommands"
)

// browseCmd holds the flags for the 'browse' subcommand.
type browseCmd struct {
	currency string
}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "browse the dashboard interactively" }
func (*browseCmd) Usage() string {
	return `fbd browse [-c <currency>]

  Starts an interactive drill-down session. Type the number or the exact
  name of a row to drill into it, '..' to go back up one level, and 'q'
  to quit. The view is re-rendered after every selection.
`
}

func (c *browseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", fundboard.DefaultCurrency, "Reporting currency for market values")
}

func (c *browseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := fundboard.NewDashboard(book)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		render(dashboard)
		fmt.Print(prompt(dashboard.Selection()))

		if !scanner.Scan() {
			fmt.Println()
			return subcommands.ExitSuccess
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "q", "quit":
			return subcommands.ExitSuccess
		case "..":
			// going up one level is a toggle of the active selection
			switch sel := dashboard.Selection(); sel.Level() {
			case fundboard.FundSelected:
				dashboard.SelectSubFund(sel.Fund)
			case fundboard.TypeSelected:
				dashboard.SelectFundType(sel.FundType)
			}
		default:
			if err := drill(dashboard, input); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}
	}
}

// render prints the view the current selection makes visible.
func render(d *fundboard.Dashboard) {
	switch d.Selection().Level() {
	case fundboard.Top:
		printMarkdown(renderer.OverviewMarkdown(d.Overview()))
	case fundboard.TypeSelected:
		printMarkdown(renderer.FundsMarkdown(d.Funds()))
	case fundboard.FundSelected:
		printMarkdown(renderer.DetailMarkdown(d.Details()))
	}
}

// drill applies one selection event to the dashboard.
//
// At the Top level the input selects a fund type; deeper down it selects a
// sub-fund, so the SelectSubFund precondition (a fund type is active) always
// holds here.
func drill(d *fundboard.Dashboard, input string) error {
	switch d.Selection().Level() {
	case fundboard.Top:
		key, ok := resolveKey(input, d.TopLevel())
		if !ok {
			return fmt.Errorf("unknown fund type %q", input)
		}
		d.SelectFundType(key)
	default:
		key, ok := resolveKey(input, d.SecondLevel())
		if !ok {
			return fmt.Errorf("unknown fund %q", input)
		}
		d.SelectSubFund(key)
	}
	return nil
}

// resolveKey turns user input into a group key: either a 1-based row number
// or the exact key of a row.
func resolveKey(input string, rows []fundboard.AggregateRow) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(rows) {
			return "", false
		}
		return rows[n-1].Key, true
	}
	for _, row := range rows {
		if row.Key == input {
			return row.Key, true
		}
	}
	return "", false
}

func prompt(sel fundboard.Selection) string {
	switch sel.Level() {
	case fundboard.TypeSelected:
		return sel.FundType + "> "
	case fundboard.FundSelected:
		return sel.FundType + "/" + sel.Fund + "> "
	default:
		return "browse> "
	}
}
