package stockstat

// Lot is a single buy event's block of shares, tracked independently for
// cost-basis purposes.
//
// Remaining only ever decreases, from Quantity down to zero. A drained lot
// stays in the position's lot list: with zero remaining shares it weighs
// nothing in the cost averages, and keeping it preserves the buy history.
type Lot struct {
	Quantity  Quantity  // as bought, fixed
	Remaining Quantity  // still held, 0 ≤ Remaining ≤ Quantity
	Price     Money     // per-share buy price, excludes fee
	Time      Timestamp // inherited from the originating trade
}

type lots []Lot

// sellLIFO drains up to quantityToSell shares from the lots, most recently
// bought first. Lots are addressed by index and mutated in place. It returns
// the quantity that could not be covered, zero when fully matched.
func (l lots) sellLIFO(quantityToSell Quantity) Quantity {
	for i := len(l) - 1; i >= 0; i-- {
		if quantityToSell.IsZero() {
			break
		}
		if !l[i].Remaining.IsPositive() {
			continue
		}
		sold := l[i].Remaining.Min(quantityToSell)
		l[i].Remaining = l[i].Remaining.Sub(sold)
		quantityToSell = quantityToSell.Sub(sold)
	}
	return quantityToSell
}

// remainingShares sums the unsold shares over all lots.
func (l lots) remainingShares() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Remaining)
	}
	return total
}

// averageCost is the weighted average buy price of the unsold shares,
// by the lot's own price only: fees never enter this figure. An empty
// holding costs exactly zero.
func (l lots) averageCost() Money {
	var shares Quantity
	var cost Money
	for _, lot := range l {
		if !lot.Remaining.IsPositive() {
			continue
		}
		shares = shares.Add(lot.Remaining)
		cost = cost.Add(lot.Price.Mul(lot.Remaining))
	}
	if shares.IsZero() {
		return Money{}
	}
	return cost.Div(shares)
}
