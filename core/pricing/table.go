// Package pricing - Static price table
// Tables are built once and frozen. Lookups never compute discounts:
// the yearly column already carries whatever discount was decided upstream.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pricing-configurator/core/determinism"
	"pricing-configurator/core/types"
)

// Rate is the amount for one discrete value, per billing period
type Rate struct {
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`
}

// For returns the amount for the given period
func (r Rate) For(p types.BillingPeriod) decimal.Decimal {
	if p == types.BillingYearly {
		return r.Yearly
	}
	return r.Monthly
}

// DomainValueError is returned when a value is not a key of the table
// for the requested tier and dimension
type DomainValueError struct {
	Tier      types.Tier
	Dimension types.Dimension
	Value     int
}

func (e *DomainValueError) Error() string {
	return fmt.Sprintf("no %s rate for value %d in tier %q", e.Dimension, e.Value, e.Tier)
}

type dimensionRates map[types.Dimension]map[int]Rate

// PriceTable maps tier → dimension → value → rate. Immutable.
type PriceTable struct {
	currency types.Currency
	rates    map[types.Tier]dimensionRates
}

// Currency returns the table's currency
func (t *PriceTable) Currency() types.Currency {
	return t.currency
}

// Lookup returns the amount for one table cell
func (t *PriceTable) Lookup(tier types.Tier, dim types.Dimension, value int, period types.BillingPeriod) (decimal.Decimal, error) {
	rate, err := t.Rate(tier, dim, value)
	if err != nil {
		return decimal.Zero, err
	}
	if !period.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown billing period %q", period)
	}
	return rate.For(period), nil
}

// Rate returns both columns of one table cell
func (t *PriceTable) Rate(tier types.Tier, dim types.Dimension, value int) (Rate, error) {
	rate, ok := t.rates[tier][dim][value]
	if !ok {
		return Rate{}, &DomainValueError{Tier: tier, Dimension: dim, Value: value}
	}
	return rate, nil
}

// Has reports whether value is a key for tier/dim
func (t *PriceTable) Has(tier types.Tier, dim types.Dimension, value int) bool {
	_, ok := t.rates[tier][dim][value]
	return ok
}

// Keys returns the defined values for tier/dim in ascending order
func (t *PriceTable) Keys(tier types.Tier, dim types.Dimension) []int {
	return determinism.SortedKeys(t.rates[tier][dim])
}

// Tiers returns the tiers present in the table, sorted by name
func (t *PriceTable) Tiers() []types.Tier {
	return determinism.SortedKeys(t.rates)
}

// Fingerprint hashes every cell in tier, dimension, value order. Two tables
// with the same currency and amounts have the same fingerprint.
func (t *PriceTable) Fingerprint() determinism.ContentHash {
	lines := []string{t.currency.String()}
	for _, tier := range t.Tiers() {
		for _, dim := range types.Dimensions() {
			for _, v := range t.Keys(tier, dim) {
				r := t.rates[tier][dim][v]
				lines = append(lines, fmt.Sprintf("%s|%s|%d|%s|%s", tier, dim, v, r.Monthly.String(), r.Yearly.String()))
			}
		}
	}
	return determinism.HashLines(lines)
}

// HasTier reports whether the table has a branch for tier
func (t *PriceTable) HasTier(tier types.Tier) bool {
	_, ok := t.rates[tier]
	return ok
}

// Builder accumulates rates before freezing them into a PriceTable
type Builder struct {
	currency types.Currency
	rates    map[types.Tier]dimensionRates
	errs     []error
	frozen   bool
}

// NewBuilder creates a builder for a table in the given currency
func NewBuilder(currency types.Currency) *Builder {
	return &Builder{
		currency: currency,
		rates:    make(map[types.Tier]dimensionRates),
	}
}

// Set records the rate for one cell. Errors are reported by Freeze.
func (b *Builder) Set(tier types.Tier, dim types.Dimension, value int, monthly, yearly decimal.Decimal) *Builder {
	if b.frozen {
		panic("INVARIANT VIOLATED: cannot add rates after table is frozen")
	}

	switch {
	case !tier.IsValid():
		b.errs = append(b.errs, fmt.Errorf("unknown tier %q", tier))
		return b
	case !dim.IsValid():
		b.errs = append(b.errs, fmt.Errorf("unknown dimension %q", dim))
		return b
	case monthly.IsNegative() || yearly.IsNegative():
		b.errs = append(b.errs, fmt.Errorf("negative rate for %s.%s[%d]", tier, dim, value))
		return b
	}

	dims, ok := b.rates[tier]
	if !ok {
		dims = make(dimensionRates)
		b.rates[tier] = dims
	}
	cells, ok := dims[dim]
	if !ok {
		cells = make(map[int]Rate)
		dims[dim] = cells
	}
	if _, dup := cells[value]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate rate for %s.%s[%d]", tier, dim, value))
		return b
	}
	cells[value] = Rate{Monthly: monthly, Yearly: yearly}
	return b
}

// Freeze validates the accumulated rates and returns the immutable table.
// Every tier must price both dimensions.
func (b *Builder) Freeze() (*PriceTable, error) {
	if b.frozen {
		panic("INVARIANT VIOLATED: table frozen twice")
	}
	b.frozen = true

	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid price table: %w", b.errs[0])
	}
	if len(b.rates) == 0 {
		return nil, fmt.Errorf("invalid price table: no tiers")
	}
	for _, tier := range determinism.SortedKeys(b.rates) {
		for _, dim := range types.Dimensions() {
			if len(b.rates[tier][dim]) == 0 {
				return nil, fmt.Errorf("invalid price table: tier %q has no %s rates", tier, dim)
			}
		}
	}

	return &PriceTable{
		currency: b.currency,
		rates:    b.rates,
	}, nil
}
