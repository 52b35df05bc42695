package slider

import (
	"fmt"

	"pricing-configurator/core/page"
	"pricing-configurator/core/types"
)

// Role is what a slider controls. Pricing roles map to table dimensions.
type Role string

const (
	RoleSessions Role = "sessions"
	RoleVisio    Role = "visio"
	RoleOther    Role = "other"
)

// Dimension returns the priced dimension for the role
func (r Role) Dimension() (types.Dimension, bool) {
	switch r {
	case RoleSessions:
		return types.DimensionSessions, true
	case RoleVisio:
		return types.DimensionVisio, true
	default:
		return "", false
	}
}

// DefaultUnit is the label suffix used when a slider sets none
func (r Role) DefaultUnit() string {
	switch r {
	case RoleSessions:
		return "séances"
	case RoleVisio:
		return "heures"
	default:
		return ""
	}
}

// Config registers a slider
type Config struct {
	ID      string
	Role    Role
	Bounds  Bounds
	Domain  Domain
	Unit    string
	Label   page.LabelKind
	Icon    string
	Initial int
}

// Slider is a range control with its label and fill
type Slider struct {
	id     string
	role   Role
	bounds Bounds
	domain Domain
	unit   string
	label  page.Label
	style  page.Style
	raw    int
}

// New validates cfg and creates the slider at its initial position
func New(cfg Config) (*Slider, error) {
	if cfg.ID == "" {
		return nil, fmt.Errorf("slider needs an id")
	}
	if cfg.Domain == nil {
		return nil, fmt.Errorf("slider %s: no domain", cfg.ID)
	}
	switch cfg.Role {
	case RoleSessions, RoleVisio, RoleOther:
	default:
		return nil, fmt.Errorf("slider %s: unknown role %q", cfg.ID, cfg.Role)
	}
	if err := cfg.Domain.Validate(cfg.Bounds); err != nil {
		return nil, fmt.Errorf("slider %s: %w", cfg.ID, err)
	}
	if !cfg.Bounds.Contains(cfg.Initial) {
		return nil, fmt.Errorf("slider %s: initial position %d not reachable in %d..%d step %d",
			cfg.ID, cfg.Initial, cfg.Bounds.Min, cfg.Bounds.Max, cfg.Bounds.Step)
	}

	label, err := page.NewLabel(cfg.Label, cfg.Icon)
	if err != nil {
		return nil, fmt.Errorf("slider %s: %w", cfg.ID, err)
	}

	unit := cfg.Unit
	if unit == "" {
		unit = cfg.Role.DefaultUnit()
	}

	return &Slider{
		id:     cfg.ID,
		role:   cfg.Role,
		bounds: cfg.Bounds,
		domain: cfg.Domain,
		unit:   unit,
		label:  label,
		raw:    cfg.Initial,
	}, nil
}

func (s *Slider) ID() string { return s.id }
func (s *Slider) Role() Role { return s.role }
func (s *Slider) Bounds() Bounds { return s.bounds }
func (s *Slider) Domain() Domain { return s.domain }
func (s *Slider) Unit() string { return s.unit }
func (s *Slider) Raw() int { return s.raw }
func (s *Slider) Label() page.Label { return s.label }
func (s *Slider) Style() page.Style { return s.style }

// Set moves the slider. Unreachable positions are rejected and leave the
// slider where it was.
func (s *Slider) Set(raw int) error {
	if !s.bounds.Contains(raw) {
		return fmt.Errorf("slider %s: position %d not reachable in %d..%d step %d",
			s.id, raw, s.bounds.Min, s.bounds.Max, s.bounds.Step)
	}
	s.raw = raw
	return nil
}

// Value returns the domain value for the current position
func (s *Slider) Value() (int, error) {
	return s.domain.ToDomain(s.raw)
}

// Values returns every domain value the slider can take
func (s *Slider) Values() ([]int, error) {
	return Values(s.domain, s.bounds)
}
