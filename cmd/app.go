// Package cmd implements the CLI application to analyze trade exports.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/luoxin/stockstat"
)

// Register registers the subcommands. A main package calls Register() and
// then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&profitCmd{}, "reports")
}

// loadLedger reads the trades file, dispatching on its extension: .json goes
// through the JSON importer, everything else is treated as broker CSV.
func loadLedger(path, jsonPath, currency string) (*stockstat.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trades file %q: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return stockstat.ImportTradesJSON(f, jsonPath, currency)
	}
	return stockstat.ImportTrades(f, currency)
}

// printMarkdown renders markdown for the terminal and prints it. If the
// terminal renderer fails the raw markdown is printed instead, so the report
// is never lost to a styling problem.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
