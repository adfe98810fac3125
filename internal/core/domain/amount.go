package domain

import "github.com/shopspring/decimal"

const satsPerBTC = 100_000_000

// FormatBTC renders a satoshi amount as a BTC string, e.g. 5000 -> "0.00005".
func FormatBTC(sats int64) string {
	return decimal.New(sats, 0).Div(decimal.New(satsPerBTC, 0)).String()
}
