package renderer

import (
	"github.com/luoxin/stockstat"
)

// Report carries everything the templates need, already ordered and rounded.
// Numbers stay in the exact decimal types (Money, Quantity), which bring
// their own renderers (FixedString, PlainString).
type Report struct {
	// Instruments lists the open positions, sorted by code. Fully closed
	// positions have no section.
	Instruments []Instrument
	// Profits lists the realized cash-flow profit for every instrument that
	// appears in the ledger at all, open or closed, sorted by code.
	Profits []Profit
}

// Instrument is the report section for one open position.
type Instrument struct {
	Code    string
	Name    string
	Trades  []stockstat.Trade // chronological detail, for display
	Summary stockstat.PositionSummary
}

// Profit is one row of the realized profit table.
type Profit struct {
	Code   string
	Name   string
	Amount stockstat.Money // rounded to 2 places for display
}

// NewReport projects a ledger and its folded book into a Report.
func NewReport(l *stockstat.Ledger, b *stockstat.Book) *Report {
	r := &Report{}

	for _, s := range stockstat.Summarize(b, l) {
		inst := Instrument{Code: s.Code, Name: s.Name, Summary: s}
		for _, t := range l.Trades(stockstat.ByCode(s.Code)) {
			inst.Trades = append(inst.Trades, t)
		}
		r.Instruments = append(r.Instruments, inst)
	}

	// AllCodes is already sorted.
	profits := stockstat.RealizedProfits(l)
	for code := range l.AllCodes() {
		r.Profits = append(r.Profits, Profit{
			Code:   code,
			Name:   l.Name(code),
			Amount: profits[code].Round(2),
		})
	}
	return r
}
