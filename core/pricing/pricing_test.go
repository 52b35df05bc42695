// Package pricing - Price table tests
package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"pricing-configurator/core/catalog"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/types"
)

func TestQuoteScenarios(t *testing.T) {
	table := catalog.DefaultTable()

	tests := []struct {
		name     string
		sel      pricing.Selection
		expected string
	}{
		{"starter 40 no visio monthly", pricing.Selection{Tier: types.TierStarter, SessionValue: 40, VisioHours: 0, Period: types.BillingMonthly}, "€43.20"},
		{"starter 80 20h monthly", pricing.Selection{Tier: types.TierStarter, SessionValue: 80, VisioHours: 20, Period: types.BillingMonthly}, "€92.64"},
		{"expert 120 no visio yearly", pricing.Selection{Tier: types.TierExpert, SessionValue: 120, VisioHours: 0, Period: types.BillingYearly}, "€195.00"},
		{"expert 40 50h yearly", pricing.Selection{Tier: types.TierExpert, SessionValue: 40, VisioHours: 50, Period: types.BillingYearly}, "€159.00"},
		{"starter 120 10h monthly", pricing.Selection{Tier: types.TierStarter, SessionValue: 120, VisioHours: 10, Period: types.BillingMonthly}, "€96.72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := table.Quote(tt.sel)
			if err != nil {
				t.Fatalf("Quote(%s) failed: %v", tt.sel, err)
			}
			if got := q.Total.String(); got != tt.expected {
				t.Errorf("Quote(%s) = %s, want %s", tt.sel, got, tt.expected)
			}
		})
	}
}

// TestQuoteIsSumOfLookups checks every combination of the built-in table
func TestQuoteIsSumOfLookups(t *testing.T) {
	table := catalog.DefaultTable()

	count := 0
	for _, tier := range table.Tiers() {
		for _, s := range table.Keys(tier, types.DimensionSessions) {
			for _, v := range table.Keys(tier, types.DimensionVisio) {
				for _, p := range types.BillingPeriods() {
					sessions, err := table.Lookup(tier, types.DimensionSessions, s, p)
					if err != nil {
						t.Fatal(err)
					}
					visio, err := table.Lookup(tier, types.DimensionVisio, v, p)
					if err != nil {
						t.Fatal(err)
					}

					sel := pricing.Selection{Tier: tier, SessionValue: s, VisioHours: v, Period: p}
					q, err := table.Quote(sel)
					if err != nil {
						t.Fatal(err)
					}
					want := sessions.Add(visio).StringFixed(2)
					if got := q.Total.Value.StringFixed(2); got != want {
						t.Errorf("%s: total %s, want %s", sel, got, want)
					}
					if !q.Total.Value.Equal(q.Total.Value.Round(2)) {
						t.Errorf("%s: total %s has more than 2 decimals", sel, q.Total.Value)
					}
					count++
				}
			}
		}
	}

	if count != 2*3*4*2 {
		t.Errorf("checked %d combinations, want %d", count, 2*3*4*2)
	}
}

func TestLookupOutsideDomain(t *testing.T) {
	table := catalog.DefaultTable()

	tests := []struct {
		name  string
		tier  types.Tier
		dim   types.Dimension
		value int
	}{
		{"sessions between keys", types.TierStarter, types.DimensionSessions, 60},
		{"visio position used as key", types.TierExpert, types.DimensionVisio, 3},
		{"unknown tier", types.Tier("premium"), types.DimensionSessions, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Lookup(tt.tier, tt.dim, tt.value, types.BillingMonthly)
			var dv *pricing.DomainValueError
			if !errors.As(err, &dv) {
				t.Fatalf("expected DomainValueError, got %v", err)
			}
			if dv.Value != tt.value || dv.Dimension != tt.dim || dv.Tier != tt.tier {
				t.Errorf("error carries %+v", dv)
			}
		})
	}
}

func TestLookupUnknownPeriod(t *testing.T) {
	table := catalog.DefaultTable()
	if _, err := table.Lookup(types.TierStarter, types.DimensionSessions, 40, "weekly"); err == nil {
		t.Fatal("expected error for unknown period")
	}
}

func TestKeysAreSorted(t *testing.T) {
	table := catalog.DefaultTable()

	got := table.Keys(types.TierStarter, types.DimensionVisio)
	want := []int{0, 10, 20, 50}
	if len(got) != len(want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", got, want)
		}
	}
}

func TestGrid(t *testing.T) {
	table := catalog.DefaultTable()

	grid, err := table.Grid(types.TierExpert)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 3*4*2 {
		t.Fatalf("grid has %d rows, want 24", len(grid))
	}
	first, last := grid[0], grid[len(grid)-1]
	if first.Total.String() != "€90.00" || first.Period != types.BillingMonthly {
		t.Errorf("first row = %s %s", first.Selection, first.Total)
	}
	if last.Total.String() != "€279.00" || last.Period != types.BillingYearly {
		t.Errorf("last row = %s %s", last.Selection, last.Total)
	}

	if _, err := table.Grid(types.Tier("premium")); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestBuilderRejectsIncompleteTable(t *testing.T) {
	b := pricing.NewBuilder(types.CurrencyEUR)
	b.Set(types.TierStarter, types.DimensionSessions, 40, decimal.NewFromInt(10), decimal.NewFromInt(8))

	if _, err := b.Freeze(); err == nil {
		t.Fatal("expected error for tier without visio rates")
	}
}

func TestBuilderRejectsBadRates(t *testing.T) {
	tests := []struct {
		name string
		set  func(b *pricing.Builder)
	}{
		{"negative", func(b *pricing.Builder) {
			b.Set(types.TierStarter, types.DimensionVisio, 10, decimal.NewFromInt(-1), decimal.Zero)
		}},
		{"duplicate", func(b *pricing.Builder) {
			b.Set(types.TierStarter, types.DimensionVisio, 0, decimal.Zero, decimal.Zero)
		}},
		{"unknown tier", func(b *pricing.Builder) {
			b.Set(types.Tier("gold"), types.DimensionVisio, 0, decimal.Zero, decimal.Zero)
		}},
		{"unknown dimension", func(b *pricing.Builder) {
			b.Set(types.TierStarter, types.Dimension("storage"), 0, decimal.Zero, decimal.Zero)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pricing.NewBuilder(types.CurrencyEUR)
			b.Set(types.TierStarter, types.DimensionSessions, 40, decimal.NewFromInt(10), decimal.NewFromInt(8))
			b.Set(types.TierStarter, types.DimensionVisio, 0, decimal.Zero, decimal.Zero)
			tt.set(b)
			if _, err := b.Freeze(); err == nil {
				t.Fatal("expected Freeze to fail")
			}
		})
	}
}

// TestSetAfterFreezePanics proves a frozen table cannot be changed
func TestSetAfterFreezePanics(t *testing.T) {
	b := pricing.NewBuilder(types.CurrencyEUR)
	b.Set(types.TierStarter, types.DimensionSessions, 40, decimal.NewFromInt(10), decimal.NewFromInt(8))
	b.Set(types.TierStarter, types.DimensionVisio, 0, decimal.Zero, decimal.Zero)
	if _, err := b.Freeze(); err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic when setting a rate after Freeze, but no panic occurred")
		}
		t.Logf("Correctly panicked: %v", r)
	}()

	b.Set(types.TierStarter, types.DimensionSessions, 80, decimal.NewFromInt(20), decimal.NewFromInt(16))
}

func TestQuoteFormula(t *testing.T) {
	table := catalog.DefaultTable()
	q, err := table.Quote(pricing.Selection{Tier: types.TierStarter, SessionValue: 80, VisioHours: 20, Period: types.BillingMonthly})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := q.Formula(), "62.40 + 30.24 = €92.64"; got != want {
		t.Errorf("Formula() = %q, want %q", got, want)
	}
}

func TestFingerprint(t *testing.T) {
	a := catalog.DefaultTable().Fingerprint()
	if a != catalog.DefaultTable().Fingerprint() {
		t.Fatal("fingerprint not stable")
	}

	b := pricing.NewBuilder(types.CurrencyEUR)
	for _, e := range catalog.Entries {
		monthly := decimal.RequireFromString(e.Monthly)
		if e.Tier == types.TierExpert && e.Dimension == types.DimensionVisio && e.Value == 50 {
			monthly = monthly.Add(decimal.NewFromInt(1))
		}
		b.Set(e.Tier, e.Dimension, e.Value, monthly, decimal.RequireFromString(e.Yearly))
	}
	changed, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	if changed.Fingerprint() == a {
		t.Error("changed amount kept the fingerprint")
	}
}
