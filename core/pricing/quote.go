package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pricing-configurator/core/types"
)

// Selection is one card's derived state: which cells to read
type Selection struct {
	Tier         types.Tier          `json:"tier"`
	SessionValue int                 `json:"session_value"`
	VisioHours   int                 `json:"visio_hours"`
	Period       types.BillingPeriod `json:"period"`
}

// String renders the selection for logs
func (s Selection) String() string {
	return fmt.Sprintf("%s/sessions=%d/visio=%dh/%s", s.Tier, s.SessionValue, s.VisioHours, s.Period)
}

// Quote is the priced result of a Selection
type Quote struct {
	Selection

	// SessionsAmount is the sessions cell for the period
	SessionsAmount decimal.Decimal `json:"sessions_amount"`

	// VisioAmount is the visio cell for the period
	VisioAmount decimal.Decimal `json:"visio_amount"`

	// Total is the rounded sum
	Total types.Amount `json:"total"`
}

// Formula describes how the total was obtained
func (q Quote) Formula() string {
	return fmt.Sprintf("%s + %s = %s",
		q.SessionsAmount.StringFixed(2), q.VisioAmount.StringFixed(2), q.Total)
}

// Quote looks up both dimensions for sel and sums them, rounded to cents
func (t *PriceTable) Quote(sel Selection) (Quote, error) {
	sessions, err := t.Lookup(sel.Tier, types.DimensionSessions, sel.SessionValue, sel.Period)
	if err != nil {
		return Quote{}, err
	}
	visio, err := t.Lookup(sel.Tier, types.DimensionVisio, sel.VisioHours, sel.Period)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Selection:      sel,
		SessionsAmount: sessions,
		VisioAmount:    visio,
		Total:          types.NewAmount(sessions.Add(visio), t.currency),
	}, nil
}

// Grid quotes every (sessions, visio, period) combination of a tier,
// sessions-major, monthly before yearly
func (t *PriceTable) Grid(tier types.Tier) ([]Quote, error) {
	if !t.HasTier(tier) {
		return nil, &DomainValueError{Tier: tier, Dimension: types.DimensionSessions}
	}

	var quotes []Quote
	for _, s := range t.Keys(tier, types.DimensionSessions) {
		for _, v := range t.Keys(tier, types.DimensionVisio) {
			for _, p := range types.BillingPeriods() {
				q, err := t.Quote(Selection{Tier: tier, SessionValue: s, VisioHours: v, Period: p})
				if err != nil {
					return nil, err
				}
				quotes = append(quotes, q)
			}
		}
	}
	return quotes, nil
}
