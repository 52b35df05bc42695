// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// Tier is a subscription plan variant
type Tier string

const (
	TierStarter Tier = "starter"
	TierExpert  Tier = "expert"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known tier
func (t Tier) IsValid() bool {
	switch t {
	case TierStarter, TierExpert:
		return true
	default:
		return false
	}
}

// ParseTier converts a case-insensitive name into a Tier
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// Dimension is a priced axis of a tier
type Dimension string

const (
	// DimensionSessions is the number of sessions per month
	DimensionSessions Dimension = "sessions"

	// DimensionVisio is the video-call add-on, in hours
	DimensionVisio Dimension = "visio"
)

// String returns the string representation
func (d Dimension) String() string {
	return string(d)
}

// IsValid checks if the dimension is known
func (d Dimension) IsValid() bool {
	return d == DimensionSessions || d == DimensionVisio
}

// Dimensions lists every priced dimension in display order
func Dimensions() []Dimension {
	return []Dimension{DimensionSessions, DimensionVisio}
}

// BillingPeriod selects which amount column is read
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// DefaultBillingPeriod is the period shown on first render
const DefaultBillingPeriod = BillingMonthly

// String returns the string representation
func (p BillingPeriod) String() string {
	return string(p)
}

// IsValid checks if the period is known
func (p BillingPeriod) IsValid() bool {
	return p == BillingMonthly || p == BillingYearly
}

// ParseBillingPeriod converts a case-insensitive name into a BillingPeriod
func ParseBillingPeriod(s string) (BillingPeriod, bool) {
	p := BillingPeriod(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// BillingPeriods lists both periods, monthly first
func BillingPeriods() []BillingPeriod {
	return []BillingPeriod{BillingMonthly, BillingYearly}
}
