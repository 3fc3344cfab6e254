package stockstat

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Book holds one Position per instrument code for a single run of the
// engine. Positions are created lazily on the first trade for a code and
// are never shared: the map lives for one batch and is discarded once the
// summaries are produced.
type Book struct {
	positions map[string]*Position
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{positions: make(map[string]*Position)}
}

// BookOf folds a sorted ledger into a fresh book.
func BookOf(l *Ledger) (*Book, error) {
	b := NewBook()
	for _, t := range l.Trades() {
		if err := b.Apply(t); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Apply routes one chronologically-next trade to its instrument's position.
func (b *Book) Apply(t Trade) error {
	p, ok := b.positions[t.Code]
	if !ok {
		p = &Position{}
		b.positions[t.Code] = p
	}
	if err := p.Apply(t); err != nil {
		return fmt.Errorf("applying %s trade on %s: %w", t.Kind, t.Code, err)
	}
	return nil
}

// Position returns the position for a code, or nil if the code never traded.
func (b *Book) Position(code string) *Position {
	return b.positions[code]
}

// Codes iterates over all instrument codes in the book, sorted.
func (b *Book) Codes() iter.Seq[string] {
	return func(yield func(string) bool) {
		codes := slices.Collect(maps.Keys(b.positions))
		slices.Sort(codes)
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}
