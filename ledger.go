package stockstat

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger is the chronological record of all trades across all instruments.
//
// Trades in a ledger are always sorted by timestamp, trades without a
// timestamp last. The sort is stable, so trades at the same instant (or all
// without one) keep their original relative order. The engine depends on
// this: each position must see its trades in true chronological order.
type Ledger struct {
	trades []Trade
	names  map[string]string // instrument display name by code
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{names: make(map[string]string)}
}

// Append adds trades to the ledger and restores chronological order.
func (l *Ledger) Append(trades ...Trade) {
	l.trades = append(l.trades, trades...)
	for _, t := range trades {
		if _, ok := l.names[t.Code]; !ok {
			l.names[t.Code] = t.Name
		}
	}
	l.stableSort()
}

// stableSort sorts the trades by timestamp. Trades on the same instant
// keep their original relative order; unknown timestamps go last.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Time.Compare(l.trades[j].Time) < 0
	})
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Name returns the display name recorded for an instrument code.
func (l *Ledger) Name(code string) string { return l.names[code] }

// Trades returns an iterator over the trades in chronological order.
// With filters, only trades accepted by at least one filter are yielded.
func (l *Ledger) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(t) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// ByCode returns a predicate that filters trades by instrument code.
func ByCode(code string) func(Trade) bool {
	return func(t Trade) bool { return t.Code == code }
}

// AllCodes iterates over all instrument codes in the ledger, sorted.
func (l *Ledger) AllCodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		codes := slices.Collect(maps.Keys(l.names))
		slices.Sort(codes)
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}
