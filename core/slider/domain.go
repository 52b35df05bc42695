// Package slider - Range controls and their mapping to table keys.
// A slider's raw position and the value it stands for are different
// things; the Domain attached at registration says how to get from one
// to the other.
package slider

import "fmt"

// DomainKind names a mapping strategy
type DomainKind string

const (
	// KindDirect uses the raw position as the domain value
	KindDirect DomainKind = "direct"

	// KindIndexed uses the raw position as an index into a sequence
	KindIndexed DomainKind = "indexed"
)

// Domain maps raw slider positions to domain values
type Domain interface {
	// Kind returns the mapping strategy
	Kind() DomainKind

	// ToDomain maps a raw position to its domain value
	ToDomain(raw int) (int, error)

	// Validate checks the domain against the slider's bounds
	Validate(b Bounds) error
}

// DirectDomain: domain value = raw position
type DirectDomain struct{}

func (DirectDomain) Kind() DomainKind { return KindDirect }

func (DirectDomain) ToDomain(raw int) (int, error) { return raw, nil }

func (DirectDomain) Validate(b Bounds) error { return b.validate() }

// IndexedDomain: domain value = Sequence[raw position]
type IndexedDomain struct {
	Sequence []int
}

// NewIndexedDomain copies seq into a new IndexedDomain
func NewIndexedDomain(seq ...int) IndexedDomain {
	return IndexedDomain{Sequence: append([]int(nil), seq...)}
}

func (IndexedDomain) Kind() DomainKind { return KindIndexed }

func (d IndexedDomain) ToDomain(raw int) (int, error) {
	if raw < 0 || raw >= len(d.Sequence) {
		return 0, fmt.Errorf("position %d outside indexed domain of %d values", raw, len(d.Sequence))
	}
	return d.Sequence[raw], nil
}

// Validate requires bounds of exactly 0..len(Sequence)-1 in unit steps
func (d IndexedDomain) Validate(b Bounds) error {
	if err := b.validate(); err != nil {
		return err
	}
	if len(d.Sequence) == 0 {
		return fmt.Errorf("indexed domain has an empty sequence")
	}
	if b.Min != 0 || b.Max != len(d.Sequence)-1 || b.Step != 1 {
		return fmt.Errorf("indexed domain of %d values needs bounds 0..%d step 1, got %d..%d step %d",
			len(d.Sequence), len(d.Sequence)-1, b.Min, b.Max, b.Step)
	}
	return nil
}

// Values returns every domain value reachable within bounds, in position order
func Values(d Domain, b Bounds) ([]int, error) {
	positions := b.Positions()
	values := make([]int, 0, len(positions))
	for _, p := range positions {
		v, err := d.ToDomain(p)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Bounds are a range control's min, max and step
type Bounds struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

func (b Bounds) validate() error {
	if b.Step <= 0 {
		return fmt.Errorf("step must be positive, got %d", b.Step)
	}
	if b.Max < b.Min {
		return fmt.Errorf("max %d below min %d", b.Max, b.Min)
	}
	if (b.Max-b.Min)%b.Step != 0 {
		return fmt.Errorf("range %d..%d is not a multiple of step %d", b.Min, b.Max, b.Step)
	}
	return nil
}

// Contains reports whether raw is a reachable position
func (b Bounds) Contains(raw int) bool {
	return raw >= b.Min && raw <= b.Max && (raw-b.Min)%b.Step == 0
}

// Positions lists every reachable position from Min to Max
func (b Bounds) Positions() []int {
	if b.Step <= 0 || b.Max < b.Min {
		return nil
	}
	var out []int
	for p := b.Min; p <= b.Max; p += b.Step {
		out = append(out, p)
	}
	return out
}
