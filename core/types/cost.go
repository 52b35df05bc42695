// Package types - Money types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	default:
		return string(c) + " "
	}
}

// AmountPlaceholder is displayed when an amount cannot be computed
const AmountPlaceholder = "—"

// Amount is a rounded money value in a currency
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency Currency        `json:"currency"`
}

// NewAmount rounds v to cents
func NewAmount(v decimal.Decimal, c Currency) Amount {
	return Amount{Value: v.Round(2), Currency: c}
}

// String renders the amount as symbol + fixed two decimals, e.g. "€92.64"
func (a Amount) String() string {
	return a.Currency.Symbol() + a.Value.StringFixed(2)
}
