package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/stockstat"
	"github.com/luoxin/stockstat/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	tradesFile string
	outputFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full trade and position report" }
func (*reportCmd) Usage() string {
	return `sst report [-f <trades>] [-o <file>]

  Reads the trades export, folds it into per-instrument positions and
  displays the trade detail, cost summary and realized profit for each
  instrument. With -o the raw markdown is written to a file instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "f", "", "Trades export to read (CSV or JSON). Defaults to the configured trades file.")
	f.StringVar(&c.outputFile, "o", "", "Write the markdown report to this file instead of the terminal.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := buildReport(c.tradesFile)
	if status != subcommands.ExitSuccess {
		return status
	}

	md := renderer.RenderReport(report)
	if c.outputFile != "" {
		if err := os.WriteFile(c.outputFile, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// buildReport loads the configuration and the ledger, folds the book and
// projects the report. Shared by the report, summary and profit commands.
func buildReport(tradesFile string) (*renderer.Report, subcommands.ExitStatus) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	if tradesFile == "" {
		tradesFile = cfg.TradesFile
	}

	ledger, err := loadLedger(tradesFile, cfg.TradesPath, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	book, err := stockstat.BookOf(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error applying trades: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	return renderer.NewReport(ledger, book), subcommands.ExitSuccess
}
