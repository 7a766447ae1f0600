package entity

import "github.com/shopspring/decimal"

func init() {
	// Render prices and totals as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
