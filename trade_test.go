package stockstat

import "testing"

func TestParseTradeKind(t *testing.T) {
	testCases := []struct {
		in    string
		want  TradeKind
		isErr bool
	}{
		{in: "B", want: Buy},
		{in: "S", want: Sell},
		{in: "D", want: Dividend},
		{in: "buy", want: Buy},
		{in: "sell", want: Sell},
		{in: "dividend", want: Dividend},
		{in: "X", isErr: true},
		{in: "", isErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTradeKind(tc.in)
			if tc.isErr {
				if err == nil {
					t.Fatalf("ParseTradeKind(%q) accepted, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("ParseTradeKind(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewTrade_DerivesAmount(t *testing.T) {
	tr := NewTrade("test", "600000", Timestamp{}, Buy, Q(3500), M(1.416, testCurrency), Money{}, Money{})
	if want := M(4956, testCurrency); !tr.Amount.Equal(want) {
		t.Errorf("derived amount = %s, want %s", tr.Amount.PlainString(), want.PlainString())
	}

	// An explicit amount wins over the derivation.
	explicit := NewTrade("test", "600000", Timestamp{}, Buy, Q(3500), M(1.416, testCurrency), M(4956.1, testCurrency), Money{})
	if want := M(4956.1, testCurrency); !explicit.Amount.Equal(want) {
		t.Errorf("explicit amount = %s, want %s", explicit.Amount.PlainString(), want.PlainString())
	}
}
