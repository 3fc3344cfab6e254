package stockstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// this file reads the broker CSV export format:
//
//	name/code,date,type,number,price,amount,brokerage
//
// One line per trade. The name/code column packs the instrument display name
// and its unique code separated by a slash. The type column carries the
// single letter B (buy), S (sell) or D (dividend). The amount column may be
// blank, in which case it is derived as number × price. Brokerage defaults
// to zero.

// ImportTrades reads trades in the broker CSV format from r. All monetary
// columns are read as exact decimals in the given currency. The returned
// ledger is chronologically sorted.
func ImportTrades(r io.Reader, currency string) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name/code", "date", "type", "number", "price", "amount", "brokerage"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", required)
		}
	}

	ledger := NewLedger()
	var trades []Trade
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t, err := parseTradeRecord(record, col, currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trades = append(trades, t)
	}
	ledger.Append(trades...)
	return ledger, nil
}

func parseTradeRecord(record []string, col map[string]int, currency string) (Trade, error) {
	name, code, ok := strings.Cut(record[col["name/code"]], "/")
	if !ok {
		return Trade{}, fmt.Errorf("name/code %q is not in name/code form", record[col["name/code"]])
	}

	ts, err := ParseTimestamp(record[col["date"]])
	if err != nil {
		return Trade{}, err
	}

	kind, err := ParseTradeKind(strings.TrimSpace(record[col["type"]]))
	if err != nil {
		return Trade{}, err
	}

	quantity, err := ParseQuantity(strings.TrimSpace(record[col["number"]]))
	if err != nil {
		return Trade{}, fmt.Errorf("bad number %q: %w", record[col["number"]], err)
	}
	if quantity.IsNegative() {
		return Trade{}, fmt.Errorf("negative number of shares %q", record[col["number"]])
	}

	price, err := ParseMoney(strings.TrimSpace(record[col["price"]]), currency)
	if err != nil {
		return Trade{}, fmt.Errorf("bad price %q: %w", record[col["price"]], err)
	}

	// A blank amount is derived from number × price.
	amount := M(0, currency)
	if s := strings.TrimSpace(record[col["amount"]]); s != "" {
		if amount, err = ParseMoney(s, currency); err != nil {
			return Trade{}, fmt.Errorf("bad amount %q: %w", s, err)
		}
	}

	// Brokerage defaults to zero, and is typically zero for dividends.
	fee := M(0, currency)
	if s := strings.TrimSpace(record[col["brokerage"]]); s != "" {
		if fee, err = ParseMoney(s, currency); err != nil {
			return Trade{}, fmt.Errorf("bad brokerage %q: %w", s, err)
		}
	}

	return NewTrade(name, code, ts, kind, quantity, price, amount, fee), nil
}
