package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundboard"
	"github.com/etnz/fundboard/agent"
	"github.com/etnz/fundboard/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// insightCmd holds the flags for the 'insight' subcommand.
type insightCmd struct {
	currency string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask the AI analyst to comment on the dashboard" }
func (*insightCmd) Usage() string {
	return `fbd insight [-c <currency>]

  Renders the full dashboard (overview plus every fund-type breakdown)
  and sends it to Gemini for analyst commentary. Requires GEMINI_API_KEY.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", fundboard.DefaultCurrency, "Reporting currency for market values")
}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst()
	if err := analyst.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting analyst session:", err)
		return subcommands.ExitFailure
	}

	comment, err := analyst.Comment(ctx, fullDashboard(book))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(comment)

	return subcommands.ExitSuccess
}

// fullDashboard renders the overview and every fund-type breakdown, driving
// the drill-down the same way a user would.
func fullDashboard(book *fundboard.Book) string {
	var b strings.Builder
	dashboard := fundboard.NewDashboard(book)

	b.WriteString(renderer.OverviewMarkdown(dashboard.Overview()))
	for _, row := range dashboard.TopLevel() {
		dashboard.SelectFundType(row.Key)
		b.WriteString("\n")
		b.WriteString(renderer.FundsMarkdown(dashboard.Funds()))
		dashboard.SelectFundType(row.Key) // toggle back to the top level
	}
	return b.String()
}
