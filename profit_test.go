package stockstat

import "testing"

func TestRealizedProfits(t *testing.T) {
	// Buy 100@10 fee 1, sell 100@12 fee 1, dividend 20:
	// -(1000+1) + (1200-1) + 20 = 1218.
	l := testLedger(t,
		buy("600000", "2024-01-02 09:30:00", 100, 10, 1),
		sellTrade("600000", "2024-02-02 09:30:00", 100, 12, 1),
		dividend("600000", "2024-01-20 00:00:00", 100, 20),
	)

	profits := RealizedProfits(l)
	if want := M(1218, testCurrency); !profits["600000"].Equal(want) {
		t.Errorf("profit = %s, want %s", profits["600000"].PlainString(), want.PlainString())
	}
}

func TestRealizedProfits_OpenPositionDragsTheFigure(t *testing.T) {
	// Cash-flow profit, not matched-lot gain: an unsold buy counts as a
	// full outflow immediately.
	l := testLedger(t,
		buy("600000", "2024-01-02 09:30:00", 100, 10, 1),
	)
	profits := RealizedProfits(l)
	if want := M(-1001, testCurrency); !profits["600000"].Equal(want) {
		t.Errorf("profit = %s, want %s", profits["600000"].PlainString(), want.PlainString())
	}
}

func TestRealizedProfits_EveryCodeGetsAnEntry(t *testing.T) {
	l := testLedger(t,
		buy("600000", "2024-01-02 09:30:00", 100, 10, 1),
		buy("512800", "2024-01-02 10:00:00", 100, 1, 0),
	)
	profits := RealizedProfits(l)
	if len(profits) != 2 {
		t.Fatalf("got %d entries, want 2", len(profits))
	}
	if _, ok := profits["512800"]; !ok {
		t.Error("512800 has no profit entry")
	}
}
