// Package configurator - Pricing card controller
// Turns slider and billing events into rendered card prices.
// Every render reads the live slider positions; nothing is cached.
package configurator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pricing-configurator/core/billing"
	"pricing-configurator/core/page"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
	"pricing-configurator/internal/logging"
)

// Configurator owns the billing state, the sliders and the cards of one
// page. Events are applied one at a time.
type Configurator struct {
	mu sync.Mutex

	id      string
	table   *pricing.PriceTable
	billing *billing.State
	logger  *zap.Logger

	sliders     map[string]*slider.Slider
	sliderOrder []string
	cards       []*card
	owner       map[string]*card
}

type card struct {
	page     page.Card
	tier     types.Tier
	sessions *slider.Slider
	visio    *slider.Slider

	quote *pricing.Quote
	err   error
}

// Option customizes a Configurator
type Option func(*Configurator)

// WithLogger sets the logger; the global logger is used otherwise
func WithLogger(l *zap.Logger) Option {
	return func(c *Configurator) { c.logger = l }
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) Option {
	return func(c *Configurator) { c.id = id }
}

// New registers every slider and card of layout against table.
// A card whose slider domain does not match the table is a construction
// error, never a runtime one.
func New(table *pricing.PriceTable, layout Layout, opts ...Option) (*Configurator, error) {
	if table == nil {
		return nil, fmt.Errorf("configurator needs a price table")
	}

	c := &Configurator{
		id:      uuid.New().String(),
		table:   table,
		sliders: make(map[string]*slider.Slider),
		owner:   make(map[string]*card),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDefault(c.logger).With(zap.String("session", c.id))

	state, err := billing.NewState(layout.Billing.MonthlyID, layout.Billing.YearlyID, layout.Billing.Default)
	if err != nil {
		return nil, err
	}
	state.SetCaptions(layout.Billing.CaptionMonthly, layout.Billing.CaptionYearly)
	c.billing = state

	for _, spec := range layout.Sliders {
		if _, dup := c.sliders[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate slider %q", spec.ID)
		}
		s, err := slider.New(spec.config())
		if err != nil {
			return nil, err
		}
		c.sliders[spec.ID] = s
		c.sliderOrder = append(c.sliderOrder, spec.ID)
	}

	seen := make(map[string]bool)
	for _, spec := range layout.Cards {
		if seen[spec.ID] {
			return nil, fmt.Errorf("duplicate card %q", spec.ID)
		}
		seen[spec.ID] = true

		cd, err := c.registerCard(spec)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", spec.ID, err)
		}
		c.cards = append(c.cards, cd)
	}

	c.logger.Debug("configurator ready",
		zap.Int("sliders", len(c.sliders)),
		zap.Int("cards", len(c.cards)),
		zap.String("period", c.billing.Period().String()))
	return c, nil
}

func (c *Configurator) registerCard(spec CardSpec) (*card, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("card needs an id")
	}
	if !spec.Tier.IsValid() {
		return nil, fmt.Errorf("unknown tier %q", spec.Tier)
	}
	if !c.table.HasTier(spec.Tier) {
		return nil, fmt.Errorf("price table has no tier %q", spec.Tier)
	}

	sessions, err := c.cardSlider(spec.Sessions, slider.RoleSessions, slider.KindDirect)
	if err != nil {
		return nil, err
	}
	visio, err := c.cardSlider(spec.Visio, slider.RoleVisio, slider.KindIndexed)
	if err != nil {
		return nil, err
	}
	for _, s := range []*slider.Slider{sessions, visio} {
		if err := c.checkDomain(spec.Tier, s); err != nil {
			return nil, err
		}
	}

	cd := &card{
		page: page.Card{
			ID:      spec.ID,
			Heading: spec.Heading,
		},
		tier:     spec.Tier,
		sessions: sessions,
		visio:    visio,
	}
	if !spec.omits(page.ElementAmount) {
		cd.page.Amount = page.NewText("")
	}
	if !spec.omits(page.ElementCaption) {
		cd.page.Caption = page.NewText("")
	}
	c.owner[sessions.ID()] = cd
	c.owner[visio.ID()] = cd
	return cd, nil
}

func (c *Configurator) cardSlider(id string, role slider.Role, kind slider.DomainKind) (*slider.Slider, error) {
	s, ok := c.sliders[id]
	if !ok {
		return nil, fmt.Errorf("%s slider %q not registered", role, id)
	}
	if s.Role() != role {
		return nil, fmt.Errorf("slider %q has role %s, want %s", id, s.Role(), role)
	}
	if s.Domain().Kind() != kind {
		return nil, fmt.Errorf("%s slider %q uses a %s domain, want %s", role, id, s.Domain().Kind(), kind)
	}
	if other, taken := c.owner[id]; taken {
		return nil, fmt.Errorf("slider %q already belongs to card %s", id, other.page.ID)
	}
	return s, nil
}

func (c *Configurator) checkDomain(tier types.Tier, s *slider.Slider) error {
	dim, _ := s.Role().Dimension()
	values, err := s.Values()
	if err != nil {
		return fmt.Errorf("slider %q: %w", s.ID(), err)
	}
	for _, v := range values {
		if !c.table.Has(tier, dim, v) {
			return fmt.Errorf("slider %q: %w", s.ID(), &pricing.DomainValueError{Tier: tier, Dimension: dim, Value: v})
		}
	}
	return nil
}

// ID returns the session id attached to this configurator's logs
func (c *Configurator) ID() string {
	return c.id
}

// Table returns the price table
func (c *Configurator) Table() *pricing.PriceTable {
	return c.table
}

// Period returns the current billing period
func (c *Configurator) Period() types.BillingPeriod {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.billing.Period()
}

// Init performs the initial pass: every slider is synced, then every card
// is priced.
func (c *Configurator) Init() *Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	report := &Report{Event: "init"}
	for _, id := range c.sliderOrder {
		c.syncSlider(c.sliders[id], report)
	}
	c.renderAll(report)
	return report
}

// Handle applies one event. Rejected events change nothing and return an
// error; render problems are recorded in the report and logged.
func (c *Configurator) Handle(ev Event) (*Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case SliderInput:
		return c.handleSlider(e)
	case BillingSelect:
		return c.handleBilling(e)
	default:
		return nil, apperrors.Inputf("unsupported event %T", ev)
	}
}

func (c *Configurator) handleSlider(e SliderInput) (*Report, error) {
	s, ok := c.sliders[e.SliderID]
	if !ok {
		return nil, apperrors.NotFound("slider", e.SliderID)
	}
	if err := s.Set(e.Raw); err != nil {
		return nil, apperrors.Wrap(apperrors.TypeInput, "slider input rejected", err)
	}

	report := &Report{Event: e.String()}
	c.syncSlider(s, report)
	if cd, ok := c.owner[s.ID()]; ok {
		c.renderCard(cd, c.billing.Period(), report)
	}
	return report, nil
}

func (c *Configurator) handleBilling(e BillingSelect) (*Report, error) {
	changed, err := c.billing.Select(e.ControlID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TypeNotFound, "billing selection rejected", err)
	}

	report := &Report{Event: e.String()}
	c.logger.Debug("billing period selected",
		zap.String("control", e.ControlID),
		zap.String("period", c.billing.Period().String()),
		zap.Bool("changed", changed))
	c.renderAll(report)
	return report, nil
}

func (c *Configurator) syncSlider(s *slider.Slider, report *Report) {
	report.Synced = append(report.Synced, s.ID())
	if err := s.Sync(); err != nil {
		report.fail(s.ID(), err)
		c.logger.Warn("slider label not updated", zap.String("slider", s.ID()), zap.Error(err))
	}
}

func (c *Configurator) renderAll(report *Report) {
	period := c.billing.Period()
	for _, cd := range c.cards {
		c.renderCard(cd, period, report)
	}
}

// renderCard prices one card for period and writes its amount and caption
func (c *Configurator) renderCard(cd *card, period types.BillingPeriod, report *Report) {
	report.Rendered = append(report.Rendered, cd.page.ID)
	log := c.logger.With(zap.String("card", cd.page.ID), zap.String("tier", cd.tier.String()))

	amount := types.AmountPlaceholder
	quote, err := c.quote(cd, period)
	if err != nil {
		cd.quote, cd.err = nil, err
		report.fail(cd.page.ID, err)
		log.Warn("price not computed", zap.Error(err))
	} else {
		cd.quote, cd.err = &quote, nil
		amount = quote.Total.String()
		log.Debug("price rendered", zap.String("selection", quote.Selection.String()), zap.String("total", amount))
	}

	if err := cd.page.SetAmount(amount); err != nil {
		report.fail(cd.page.ID, err)
		log.Warn("amount not displayed", zap.Error(err))
	}
	if err := cd.page.SetCaption(c.billing.Caption(period)); err != nil {
		report.fail(cd.page.ID, err)
		log.Warn("caption not displayed", zap.Error(err))
	}
}

func (c *Configurator) quote(cd *card, period types.BillingPeriod) (pricing.Quote, error) {
	sessions, err := cd.sessions.Value()
	if err != nil {
		return pricing.Quote{}, err
	}
	visio, err := cd.visio.Value()
	if err != nil {
		return pricing.Quote{}, err
	}
	return c.table.Quote(pricing.Selection{
		Tier:         cd.tier,
		SessionValue: sessions,
		VisioHours:   visio,
		Period:       period,
	})
}

// Report describes what one event touched
type Report struct {
	Event    string    `json:"event"`
	Synced   []string  `json:"synced,omitempty"`
	Rendered []string  `json:"rendered,omitempty"`
	Failures []Failure `json:"failures,omitempty"`
}

// Failure is a render problem on one slider or card
type Failure struct {
	Target  string `json:"target"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (r *Report) fail(target string, err error) {
	r.Failures = append(r.Failures, Failure{Target: target, Message: err.Error(), Err: err})
}

// HasDomainError reports whether any failure is a DomainValueError
func (r *Report) HasDomainError() bool {
	for _, f := range r.Failures {
		var dv *pricing.DomainValueError
		if errors.As(f.Err, &dv) {
			return true
		}
	}
	return false
}
