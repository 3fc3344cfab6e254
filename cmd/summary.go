package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/luoxin/stockstat/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	tradesFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the open position summary table" }
func (*summaryCmd) Usage() string {
	return `sst summary [-f <trades>]

  Displays one row per open position: held shares, diluted cost, actual
  cost and total cost. Fully closed positions are omitted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "f", "", "Trades export to read (CSV or JSON). Defaults to the configured trades file.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := buildReport(c.tradesFile)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderSummary(report))
	return subcommands.ExitSuccess
}
