// Package catalog - Built-in price table and page layout
// The amounts are the published list prices. Yearly amounts are the
// monthly equivalent when billed annually and already include the discount.
package catalog

import (
	"github.com/shopspring/decimal"

	"pricing-configurator/core/pricing"
	"pricing-configurator/core/types"
)

// Entry is one published price cell
type Entry struct {
	Tier      types.Tier
	Dimension types.Dimension
	Value     int
	Monthly   string
	Yearly    string
}

// Entries is the published price list
var Entries = []Entry{
	{types.TierStarter, types.DimensionSessions, 40, "43.20", "36.00"},
	{types.TierStarter, types.DimensionSessions, 80, "62.40", "52.00"},
	{types.TierStarter, types.DimensionSessions, 120, "81.60", "68.00"},
	{types.TierStarter, types.DimensionVisio, 0, "0", "0"},
	{types.TierStarter, types.DimensionVisio, 10, "15.12", "12.60"},
	{types.TierStarter, types.DimensionVisio, 20, "30.24", "25.20"},
	{types.TierStarter, types.DimensionVisio, 50, "75.60", "63.00"},

	{types.TierExpert, types.DimensionSessions, 40, "90.00", "75.00"},
	{types.TierExpert, types.DimensionSessions, 80, "162.00", "135.00"},
	{types.TierExpert, types.DimensionSessions, 120, "234.00", "195.00"},
	{types.TierExpert, types.DimensionVisio, 0, "0", "0"},
	{types.TierExpert, types.DimensionVisio, 10, "20.16", "16.80"},
	{types.TierExpert, types.DimensionVisio, 20, "40.32", "33.60"},
	{types.TierExpert, types.DimensionVisio, 50, "100.80", "84.00"},
}

// Currency of the published price list
const Currency = types.CurrencyEUR

// DefaultTable freezes Entries into a PriceTable
func DefaultTable() *pricing.PriceTable {
	b := pricing.NewBuilder(Currency)
	for _, e := range Entries {
		b.Set(e.Tier, e.Dimension, e.Value,
			decimal.RequireFromString(e.Monthly),
			decimal.RequireFromString(e.Yearly))
	}
	table, err := b.Freeze()
	if err != nil {
		panic("INVARIANT VIOLATED: built-in price table: " + err.Error())
	}
	return table
}
