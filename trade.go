package stockstat

import "fmt"

// TradeKind identifies what a trade record did.
type TradeKind int

const (
	// Buy acquires shares and opens a new lot.
	Buy TradeKind = iota
	// Sell disposes of shares, draining lots most recent first.
	Sell
	// Dividend is a cash distribution on held shares. It never touches lots.
	Dividend
)

func (k TradeKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter code used in broker CSV exports.
func (k TradeKind) Letter() string {
	switch k {
	case Buy:
		return "B"
	case Sell:
		return "S"
	case Dividend:
		return "D"
	default:
		return "?"
	}
}

// ParseTradeKind parses a trade kind. Both the single-letter CSV codes
// (B, S, D) and the full words are accepted.
func ParseTradeKind(s string) (TradeKind, error) {
	switch s {
	case "B", "b", "buy":
		return Buy, nil
	case "S", "s", "sell":
		return Sell, nil
	case "D", "d", "dividend":
		return Dividend, nil
	default:
		return 0, fmt.Errorf("unknown trade kind: %q", s)
	}
}

// Trade is one validated, immutable trade record.
//
// For Buy and Sell, Price is the per-share execution price and Amount the
// total consideration (derived as Quantity × Price when the source record
// leaves it blank). For Dividend, Quantity is the number of shares the
// distribution applies to, Price the per-share dividend and Amount the total
// distribution. Fee defaults to zero and is typically zero for dividends.
type Trade struct {
	Name     string    // display name of the instrument
	Code     string    // unique instrument code
	Time     Timestamp // zero when the source record had no date
	Kind     TradeKind
	Quantity Quantity
	Price    Money
	Amount   Money
	Fee      Money
}

// NewTrade builds a trade record. A zero amount is derived from
// quantity × price, matching what ingestion does for blank amount columns.
func NewTrade(name, code string, ts Timestamp, kind TradeKind, quantity Quantity, price, amount, fee Money) Trade {
	if amount.IsZero() {
		amount = price.Mul(quantity)
	}
	return Trade{
		Name:     name,
		Code:     code,
		Time:     ts,
		Kind:     kind,
		Quantity: quantity,
		Price:    price,
		Amount:   amount,
		Fee:      fee,
	}
}

// Equal reports whether two trades carry the same values.
func (t Trade) Equal(o Trade) bool {
	return t.Name == o.Name &&
		t.Code == o.Code &&
		t.Time.Equal(o.Time) &&
		t.Kind == o.Kind &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Amount.Equal(o.Amount) &&
		t.Fee.Equal(o.Fee)
}
