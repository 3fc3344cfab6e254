package stockstat

// PositionSummary is the reporting-friendly snapshot of one open position.
// Costs are rounded for display: per-share costs to 3 places, the total to 2.
type PositionSummary struct {
	Code        string
	Name        string
	Quantity    Quantity
	DilutedCost Money
	ActualCost  Money
	TotalCost   Money
}

// Summarize projects the book's open positions into summaries, sorted by
// instrument code. Fully closed positions produce no row.
//
// The actual cost is recomputed from the remaining lots at summary time
// rather than read back from the position, so rounding is applied exactly
// once, to the exact value.
func Summarize(b *Book, l *Ledger) []PositionSummary {
	var summaries []PositionSummary
	for code := range b.Codes() {
		p := b.Position(code)
		if !p.quantity.IsPositive() {
			continue
		}
		actual := p.lots.averageCost()
		summaries = append(summaries, PositionSummary{
			Code:        code,
			Name:        l.Name(code),
			Quantity:    p.quantity,
			DilutedCost: p.dilutedCost.Round(3),
			ActualCost:  actual.Round(3),
			TotalCost:   actual.Mul(p.quantity).Round(2),
		})
	}
	return summaries
}
