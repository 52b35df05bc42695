package catalog

import (
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/page"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
)

// Slider bounds shared by every card
var (
	SessionsBounds = slider.Bounds{Min: 40, Max: 120, Step: 40}
	VisioBounds    = slider.Bounds{Min: 0, Max: 3, Step: 1}

	// VisioHours maps visio slider positions 0-3 to hours
	VisioHours = []int{0, 10, 20, 50}
)

// Billing control ids
const (
	MonthlyControlID = "monthlyBtn"
	YearlyControlID  = "yearlyBtn"
)

// SessionsSliderID and VisioSliderID name a card's sliders
func SessionsSliderID(cardID string) string { return cardID + "-sessions" }
func VisioSliderID(cardID string) string { return cardID + "-visio" }

// DefaultLayout is the published page: a starter card then an expert card,
// both starting at 40 sessions without visio, billed monthly
func DefaultLayout() configurator.Layout {
	var layout configurator.Layout
	for _, c := range []struct {
		id      string
		heading string
		tier    types.Tier
	}{
		{"starter", "Starter", types.TierStarter},
		{"expert", "Expert", types.TierExpert},
	} {
		layout.Sliders = append(layout.Sliders,
			configurator.SliderSpec{
				ID:      SessionsSliderID(c.id),
				Role:    slider.RoleSessions,
				Bounds:  SessionsBounds,
				Domain:  slider.DirectDomain{},
				Label:   page.LabelIconText,
				Icon:    "calendar.svg",
				Initial: SessionsBounds.Min,
			},
			configurator.SliderSpec{
				ID:      VisioSliderID(c.id),
				Role:    slider.RoleVisio,
				Bounds:  VisioBounds,
				Domain:  slider.NewIndexedDomain(VisioHours...),
				Label:   page.LabelText,
				Initial: VisioBounds.Min,
			},
		)
		layout.Cards = append(layout.Cards, configurator.CardSpec{
			ID:       c.id,
			Heading:  c.heading,
			Tier:     c.tier,
			Sessions: SessionsSliderID(c.id),
			Visio:    VisioSliderID(c.id),
		})
	}

	layout.Billing = configurator.BillingSpec{
		MonthlyID: MonthlyControlID,
		YearlyID:  YearlyControlID,
		Default:   types.DefaultBillingPeriod,
	}
	return layout
}
