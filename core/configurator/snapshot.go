package configurator

import (
	"pricing-configurator/core/billing"
	"pricing-configurator/core/page"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
)

// Snapshot is a read-only copy of everything currently displayed
type Snapshot struct {
	Session  string              `json:"session"`
	Event    string              `json:"event,omitempty"`
	Currency types.Currency      `json:"currency"`
	Period   types.BillingPeriod `json:"period"`
	Controls []billing.Control   `json:"controls"`
	Cards    []CardView          `json:"cards"`

	// Sliders holds standalone sliders that belong to no card
	Sliders []SliderView `json:"sliders,omitempty"`
}

// CardView is one card as displayed
type CardView struct {
	ID       string         `json:"id"`
	Heading  string         `json:"heading,omitempty"`
	Tier     types.Tier     `json:"tier"`
	Amount   *string        `json:"amount"`
	Caption  *string        `json:"caption"`
	Quote    *pricing.Quote `json:"quote,omitempty"`
	Error    string         `json:"error,omitempty"`
	Sessions SliderView     `json:"sessions"`
	Visio    SliderView     `json:"visio"`
}

// SliderView is one slider as displayed
type SliderView struct {
	ID          string            `json:"id"`
	Role        slider.Role       `json:"role"`
	Domain      slider.DomainKind `json:"domain"`
	Bounds      slider.Bounds     `json:"bounds"`
	Raw         int               `json:"raw"`
	Value       int               `json:"value"`
	FillPercent string            `json:"fill_percent"`
	Style       page.Style        `json:"style"`
	LabelKind   page.LabelKind    `json:"label_kind"`
	LabelIcon   string            `json:"label_icon,omitempty"`
	LabelText   *string           `json:"label_text"`
}

// Snapshot copies the current page state
func (c *Configurator) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{
		Session:  c.id,
		Currency: c.table.Currency(),
		Period:   c.billing.Period(),
		Controls: c.billing.Controls(),
	}

	for _, cd := range c.cards {
		view := CardView{
			ID:       cd.page.ID,
			Heading:  cd.page.Heading,
			Tier:     cd.tier,
			Amount:   textOf(cd.page.Amount),
			Caption:  textOf(cd.page.Caption),
			Sessions: sliderView(cd.sessions),
			Visio:    sliderView(cd.visio),
		}
		if cd.quote != nil {
			q := *cd.quote
			view.Quote = &q
		}
		if cd.err != nil {
			view.Error = cd.err.Error()
		}
		snap.Cards = append(snap.Cards, view)
	}

	for _, id := range c.sliderOrder {
		if _, owned := c.owner[id]; owned {
			continue
		}
		snap.Sliders = append(snap.Sliders, sliderView(c.sliders[id]))
	}
	return snap
}

// Card returns the view of one card
func (s *Snapshot) Card(id string) (CardView, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CardView{}, false
}

func textOf(t *page.Text) *string {
	if t == nil {
		return nil
	}
	v := t.String()
	return &v
}

func sliderView(s *slider.Slider) SliderView {
	v := SliderView{
		ID:          s.ID(),
		Role:        s.Role(),
		Domain:      s.Domain().Kind(),
		Bounds:      s.Bounds(),
		Raw:         s.Raw(),
		FillPercent: s.FillPercent().Round(4).String(),
		Style:       s.Style(),
		LabelKind:   page.LabelNone,
	}
	if value, err := s.Value(); err == nil {
		v.Value = value
	}
	if l := s.Label(); l != nil {
		v.LabelKind = l.Kind()
		text := l.Text()
		v.LabelText = &text
		if it, ok := l.(*page.IconTextLabel); ok {
			v.LabelIcon = it.Icon
		}
	}
	return v
}
