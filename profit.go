package stockstat

// RealizedProfits computes the net cash-flow profit per instrument code,
// as a pure fold over the trade stream, independent of any position state:
//
//   - a sell contributes +(amount − fee)
//   - a buy contributes −(amount + fee)
//   - a dividend contributes +amount
//
// This is a cash-flow metric, not a matched-lot realized gain: capital spent
// on shares still held is subtracted immediately, so an open position drags
// the figure down until it is sold. Every code appearing in the ledger gets
// an entry, even when its flows net out to zero.
func RealizedProfits(l *Ledger) map[string]Money {
	profits := make(map[string]Money)
	for _, t := range l.Trades() {
		p := profits[t.Code]
		switch t.Kind {
		case Sell:
			p = p.Add(t.Amount.Sub(t.Fee))
		case Buy:
			p = p.Sub(t.Amount.Add(t.Fee))
		case Dividend:
			p = p.Add(t.Amount)
		}
		profits[t.Code] = p
	}
	return profits
}
