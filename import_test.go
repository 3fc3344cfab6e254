package stockstat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `name/code,date,type,number,price,amount,brokerage
银行ETF/512800,2024-10-21 14:47:28,B,3500,1.416,4956.00,0.89
银行ETF/512800,2024-10-22 14:47,S,1500,1.450,,0.50
浦发银行/600000,20241023 093000,B,100,10.5,1050.00,
浦发银行/600000,,D,100,0.2,20,0
`

func TestImportTrades(t *testing.T) {
	ledger, err := ImportTrades(strings.NewReader(sampleCSV), "CNY")
	require.NoError(t, err)
	require.Equal(t, 4, ledger.Len())

	var trades []Trade
	for _, tr := range ledger.Trades() {
		trades = append(trades, tr)
	}

	first := trades[0]
	assert.Equal(t, "银行ETF", first.Name)
	assert.Equal(t, "512800", first.Code)
	assert.Equal(t, Buy, first.Kind)
	assert.Equal(t, "2024-10-21 14:47:28", first.Time.String())
	assert.True(t, first.Quantity.Equal(Q(3500)))
	assert.True(t, first.Price.Equal(M(1.416, "CNY")))
	assert.True(t, first.Amount.Equal(M(4956, "CNY")))
	assert.True(t, first.Fee.Equal(M(0.89, "CNY")))

	// Blank amount is derived as number × price.
	second := trades[1]
	assert.Equal(t, Sell, second.Kind)
	assert.True(t, second.Amount.Equal(M(2175, "CNY")), "derived amount, got %s", second.Amount.PlainString())
	// Blank brokerage defaults to zero.
	third := trades[2]
	assert.True(t, third.Fee.IsZero())

	// The undated dividend sorts last.
	last := trades[3]
	assert.Equal(t, Dividend, last.Kind)
	assert.True(t, last.Time.IsZero())
}

func TestImportTrades_Errors(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{
			name: "missing column",
			csv:  "name/code,date,type,number,price,amount\na/b,,B,1,1,1\n",
		},
		{
			name: "bad trade kind",
			csv:  "name/code,date,type,number,price,amount,brokerage\na/b,,X,1,1,1,0\n",
		},
		{
			name: "no slash in name/code",
			csv:  "name/code,date,type,number,price,amount,brokerage\nnocode,,B,1,1,1,0\n",
		},
		{
			name: "negative share count",
			csv:  "name/code,date,type,number,price,amount,brokerage\na/b,,B,-1,1,1,0\n",
		},
		{
			name: "unparseable date",
			csv:  "name/code,date,type,number,price,amount,brokerage\na/b,someday,B,1,1,1,0\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportTrades(strings.NewReader(tc.csv), "CNY")
			assert.Error(t, err)
		})
	}
}

func TestImportTradesJSON(t *testing.T) {
	export := `{
		"records": [
			{"code": "512800", "name": "银行ETF", "date": "2024-10-21 14:47:28", "type": "buy", "quantity": 3500, "price": 1.416, "amount": 4956.00},
			{"code": "512800", "name": "银行ETF", "date": "2024-11-01 10:00:00", "type": "sell", "quantity": 1000, "price": "1.50", "fee": 0.75}
		]
	}`

	ledger, err := ImportTradesJSON(strings.NewReader(export), "$.records[*]", "CNY")
	require.NoError(t, err)
	require.Equal(t, 2, ledger.Len())

	var trades []Trade
	for _, tr := range ledger.Trades() {
		trades = append(trades, tr)
	}

	assert.Equal(t, Buy, trades[0].Kind)
	assert.True(t, trades[0].Price.Equal(M(1.416, "CNY")))
	assert.True(t, trades[0].Amount.Equal(M(4956, "CNY")))

	// Quoted numbers are accepted, and a missing amount is derived.
	assert.True(t, trades[1].Price.Equal(M(1.5, "CNY")))
	assert.True(t, trades[1].Amount.Equal(M(1500, "CNY")))
	assert.True(t, trades[1].Fee.Equal(M(0.75, "CNY")))
}

func TestImportTradesJSON_BareArray(t *testing.T) {
	export := `[{"code": "600000", "name": "浦发银行", "date": "", "type": "dividend", "quantity": 100, "price": 0.2, "amount": 20}]`

	ledger, err := ImportTradesJSON(strings.NewReader(export), DefaultTradesPath, "CNY")
	require.NoError(t, err)
	require.Equal(t, 1, ledger.Len())

	profits := RealizedProfits(ledger)
	assert.True(t, profits["600000"].Equal(M(20, "CNY")))
}

func TestImportTradesJSON_BadPath(t *testing.T) {
	_, err := ImportTradesJSON(strings.NewReader(`{"records": []}`), "$.nothing[*]", "CNY")
	assert.Error(t, err)
}
