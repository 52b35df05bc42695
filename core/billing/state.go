// Package billing holds the monthly/yearly billing selection shared by
// every pricing card.
package billing

import (
	"fmt"

	"pricing-configurator/core/types"
)

// Default captions shown under each card's amount
const (
	CaptionMonthly = "Par mois"
	CaptionYearly  = "Par mois (facturé annuellement)"
)

// Control is one of the two mutually exclusive selector buttons
type Control struct {
	ID       string              `json:"id"`
	Period   types.BillingPeriod `json:"period"`
	Selected bool                `json:"selected"`
}

// State is the current billing period plus its two controls.
// Exactly one control is selected at any time.
type State struct {
	period   types.BillingPeriod
	controls [2]Control
	captions map[types.BillingPeriod]string
}

// NewState creates the state with the control for initial selected
func NewState(monthlyID, yearlyID string, initial types.BillingPeriod) (*State, error) {
	if monthlyID == "" || yearlyID == "" {
		return nil, fmt.Errorf("billing controls need ids")
	}
	if monthlyID == yearlyID {
		return nil, fmt.Errorf("billing controls share id %q", monthlyID)
	}
	if initial == "" {
		initial = types.DefaultBillingPeriod
	}
	if !initial.IsValid() {
		return nil, fmt.Errorf("unknown billing period %q", initial)
	}

	s := &State{
		controls: [2]Control{
			{ID: monthlyID, Period: types.BillingMonthly},
			{ID: yearlyID, Period: types.BillingYearly},
		},
		captions: map[types.BillingPeriod]string{
			types.BillingMonthly: CaptionMonthly,
			types.BillingYearly:  CaptionYearly,
		},
	}
	s.apply(initial)
	return s, nil
}

// SetCaptions overrides the caption text; empty strings keep the default
func (s *State) SetCaptions(monthly, yearly string) {
	if monthly != "" {
		s.captions[types.BillingMonthly] = monthly
	}
	if yearly != "" {
		s.captions[types.BillingYearly] = yearly
	}
}

// Period returns the current billing period
func (s *State) Period() types.BillingPeriod {
	return s.period
}

// Caption returns the caption for the given period
func (s *State) Caption(p types.BillingPeriod) string {
	return s.captions[p]
}

// Controls returns a copy of both controls, monthly first
func (s *State) Controls() []Control {
	return []Control{s.controls[0], s.controls[1]}
}

// Select activates the control with the given id. It reports whether the
// period changed.
func (s *State) Select(controlID string) (bool, error) {
	for _, c := range s.controls {
		if c.ID == controlID {
			changed := c.Period != s.period
			s.apply(c.Period)
			return changed, nil
		}
	}
	return false, fmt.Errorf("unknown billing control %q", controlID)
}

// SelectPeriod activates the control for p
func (s *State) SelectPeriod(p types.BillingPeriod) (bool, error) {
	if !p.IsValid() {
		return false, fmt.Errorf("unknown billing period %q", p)
	}
	changed := p != s.period
	s.apply(p)
	return changed, nil
}

// ControlID returns the id of the control for p
func (s *State) ControlID(p types.BillingPeriod) string {
	for _, c := range s.controls {
		if c.Period == p {
			return c.ID
		}
	}
	return ""
}

func (s *State) apply(p types.BillingPeriod) {
	s.period = p
	for i := range s.controls {
		s.controls[i].Selected = s.controls[i].Period == p
	}
}
