package stockstat

import (
	"errors"
	"fmt"
)

// ErrInsufficientShares is returned when a sell asks for more shares than
// the position holds across all of its lots.
var ErrInsufficientShares = errors.New("insufficient shares")

// ErrInvalidTradeKind is returned when a trade's kind is none of buy, sell
// or dividend.
var ErrInvalidTradeKind = errors.New("invalid trade kind")

// Position is the running state of one instrument: its open lots and the two
// cost metrics maintained over them.
//
// Diluted cost spreads all capital ever deployed — buy amounts plus fees —
// over the currently held shares. It moves only on buys; a sell reveals
// nothing new about the capital history of the remaining shares.
//
// Actual cost is the weighted average buy price of the unsold shares, fees
// excluded. It is recomputed from the lots on every buy and sell.
//
// A Position is owned and mutated exclusively through Apply. When the last
// share is sold, both costs reset to zero and the lot history is discarded:
// a later buy restarts cost tracking from nothing.
type Position struct {
	quantity    Quantity
	dilutedCost Money
	actualCost  Money
	lots        lots
}

// Quantity returns the number of shares currently held.
func (p *Position) Quantity() Quantity { return p.quantity }

// DilutedCost returns the per-share cost including all deployed capital.
func (p *Position) DilutedCost() Money { return p.dilutedCost }

// ActualCost returns the per-share cost of the unsold shares, fees excluded.
func (p *Position) ActualCost() Money { return p.actualCost }

// Lots returns a copy of the position's lots, in chronological buy order.
func (p *Position) Lots() []Lot {
	out := make([]Lot, len(p.lots))
	copy(out, p.lots)
	return out
}

// Apply folds one trade into the position, mutating it in place.
//
// The caller guarantees trades arrive in non-decreasing timestamp order for
// this position's instrument. Trades with unknown timestamps come last,
// keeping their relative input order.
func (p *Position) Apply(t Trade) error {
	switch t.Kind {
	case Buy:
		p.buy(t)
		return nil
	case Sell:
		return p.sell(t)
	case Dividend:
		// A dividend changes realized cash flow, not the cost basis of
		// held shares. See RealizedProfits.
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTradeKind, int(t.Kind))
	}
}

func (p *Position) buy(t Trade) {
	p.lots = append(p.lots, Lot{
		Quantity:  t.Quantity,
		Remaining: t.Quantity,
		Price:     t.Price,
		Time:      t.Time,
	})

	newQuantity := p.quantity.Add(t.Quantity)
	if newQuantity.IsZero() {
		// zero-share buy on an empty position: cost is defined as zero.
		p.dilutedCost = Money{}
	} else {
		deployed := p.dilutedCost.Mul(p.quantity).Add(t.Amount).Add(t.Fee)
		p.dilutedCost = deployed.Div(newQuantity)
	}
	p.quantity = newQuantity
	p.actualCost = p.lots.averageCost()
}

func (p *Position) sell(t Trade) error {
	// quantity always equals the sum of remaining shares over the lots, so an
	// oversell can be rejected before touching any lot.
	if t.Quantity.GreaterThan(p.quantity) {
		return fmt.Errorf("%w: cannot sell %s of %s, only %s held",
			ErrInsufficientShares, t.Quantity, t.Code, p.quantity)
	}
	p.lots.sellLIFO(t.Quantity)
	p.quantity = p.quantity.Sub(t.Quantity)

	if p.quantity.IsPositive() {
		p.actualCost = p.lots.averageCost()
		return nil
	}

	// Full liquidation. A fresh position restarts cost tracking from nothing.
	p.dilutedCost = Money{}
	p.actualCost = Money{}
	p.lots = nil
	return nil
}
