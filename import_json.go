package stockstat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultTradesPath locates the trade records in a JSON export whose top
// level is the record array itself.
const DefaultTradesPath = "$[*]"

// ImportTradesJSON reads trades from a broker JSON export. The path is a
// JSONPath expression selecting the record array; use DefaultTradesPath for
// exports that are a bare array. Each record is an object with the fields
// code, name, date, type, quantity, price and optionally amount and fee.
//
// Numbers are decoded without going through binary floats, so prices and
// amounts stay exact.
func ImportTradesJSON(r io.Reader, path, currency string) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	found, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	records, ok := found.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q does not select an array of records", path)
	}

	ledger := NewLedger()
	var trades []Trade
	for i, rec := range records {
		obj, ok := rec.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		t, err := parseJSONTrade(obj, currency)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		trades = append(trades, t)
	}
	ledger.Append(trades...)
	return ledger, nil
}

func parseJSONTrade(obj map[string]interface{}, currency string) (Trade, error) {
	code, _ := obj["code"].(string)
	if code == "" {
		return Trade{}, fmt.Errorf("missing code")
	}
	name, _ := obj["name"].(string)

	date, _ := obj["date"].(string)
	ts, err := ParseTimestamp(date)
	if err != nil {
		return Trade{}, err
	}

	kindStr, _ := obj["type"].(string)
	kind, err := ParseTradeKind(kindStr)
	if err != nil {
		return Trade{}, err
	}

	quantity, err := jsonQuantity(obj, "quantity")
	if err != nil {
		return Trade{}, err
	}
	price, err := jsonMoney(obj, "price", currency)
	if err != nil {
		return Trade{}, err
	}
	amount, err := jsonMoney(obj, "amount", currency)
	if err != nil {
		return Trade{}, err
	}
	fee, err := jsonMoney(obj, "fee", currency)
	if err != nil {
		return Trade{}, err
	}

	return NewTrade(name, code, ts, kind, quantity, price, amount, fee), nil
}

func jsonQuantity(obj map[string]interface{}, key string) (Quantity, error) {
	s, err := jsonNumberString(obj, key)
	if err != nil || s == "" {
		return Quantity{}, err
	}
	q, err := ParseQuantity(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("bad %s %q: %w", key, s, err)
	}
	return q, nil
}

func jsonMoney(obj map[string]interface{}, key, currency string) (Money, error) {
	s, err := jsonNumberString(obj, key)
	if err != nil {
		return Money{}, err
	}
	if s == "" {
		return M(0, currency), nil
	}
	m, err := ParseMoney(s, currency)
	if err != nil {
		return Money{}, fmt.Errorf("bad %s %q: %w", key, s, err)
	}
	return m, nil
}

// jsonNumberString extracts a numeric field as its textual representation.
// Absent fields yield "". Exports are inconsistent about quoting numbers, so
// both forms are accepted.
func jsonNumberString(obj map[string]interface{}, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	switch n := v.(type) {
	case json.Number:
		return n.String(), nil
	case string:
		return n, nil
	default:
		return "", fmt.Errorf("field %s has unexpected type %T", key, v)
	}
}
