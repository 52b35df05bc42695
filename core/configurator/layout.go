package configurator

import (
	"pricing-configurator/core/page"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
)

// Layout declares the sliders, cards and billing controls of a page
type Layout struct {
	Sliders []SliderSpec
	Cards   []CardSpec
	Billing BillingSpec
}

// SliderSpec registers one slider. Sliders not referenced by any card are
// standalone: their fill and label are kept in sync but they price nothing.
type SliderSpec struct {
	ID      string
	Role    slider.Role
	Bounds  slider.Bounds
	Domain  slider.Domain
	Unit    string
	Label   page.LabelKind
	Icon    string
	Initial int
}

// CardSpec registers one pricing card with an explicit tier
type CardSpec struct {
	ID       string
	Heading  string
	Tier     types.Tier
	Sessions string
	Visio    string

	// Omit lists page elements this card does not provide
	// (page.ElementAmount, page.ElementCaption)
	Omit []string
}

// BillingSpec names the two billing controls
type BillingSpec struct {
	MonthlyID      string
	YearlyID       string
	Default        types.BillingPeriod
	CaptionMonthly string
	CaptionYearly  string
}

func (c CardSpec) omits(element string) bool {
	for _, o := range c.Omit {
		if o == element {
			return true
		}
	}
	return false
}

func (s SliderSpec) config() slider.Config {
	return slider.Config{
		ID:      s.ID,
		Role:    s.Role,
		Bounds:  s.Bounds,
		Domain:  s.Domain,
		Unit:    s.Unit,
		Label:   s.Label,
		Icon:    s.Icon,
		Initial: s.Initial,
	}
}
