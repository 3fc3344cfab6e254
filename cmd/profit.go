package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/luoxin/stockstat/renderer"
)

// profitCmd holds the flags for the 'profit' subcommand.
type profitCmd struct {
	tradesFile string
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display the realized cash-flow profit per instrument" }
func (*profitCmd) Usage() string {
	return `sst profit [-f <trades>]

  Displays the net cash-flow profit for every instrument in the export:
  sells and dividends in, buys and fees out. Instruments that are fully
  closed appear here even though they have no position summary.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "f", "", "Trades export to read (CSV or JSON). Defaults to the configured trades file.")
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := buildReport(c.tradesFile)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderProfits(report))
	return subcommands.ExitSuccess
}
