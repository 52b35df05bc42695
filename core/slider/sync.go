package slider

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pricing-configurator/core/page"
)

// FillGradient is the track fill drawn up to the thumb
const FillGradient = "linear-gradient(90deg, #7BB3DF 0%, #5C97D5 100%)"

var hundred = decimal.NewFromInt(100)

// FillPercent returns how far raw sits between min and max, in [0, 100].
// A range with max == min is always full.
func FillPercent(b Bounds, raw int) decimal.Decimal {
	if b.Max <= b.Min {
		return hundred
	}
	switch {
	case raw <= b.Min:
		return decimal.Zero
	case raw >= b.Max:
		return hundred
	}
	return decimal.NewFromInt(int64(raw - b.Min)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(b.Max - b.Min)))
}

// FillStyle builds the inline style for a fill percentage
func FillStyle(pct decimal.Decimal) page.Style {
	return page.Style{
		BackgroundImage:  FillGradient,
		BackgroundSize:   pct.Round(4).String() + "% 100%",
		BackgroundRepeat: "no-repeat",
	}
}

// FillPercent returns the slider's current fill
func (s *Slider) FillPercent() decimal.Decimal {
	return FillPercent(s.bounds, s.raw)
}

// LabelText renders "<domain value> <unit>"
func (s *Slider) LabelText() (string, error) {
	v, err := s.Value()
	if err != nil {
		return "", err
	}
	if s.unit == "" {
		return fmt.Sprintf("%d", v), nil
	}
	return fmt.Sprintf("%d %s", v, s.unit), nil
}

// Sync brings the fill and the label in line with the current position.
// The fill is always updated; a missing label is reported after it.
func (s *Slider) Sync() error {
	s.style = FillStyle(s.FillPercent())

	text, err := s.LabelText()
	if err != nil {
		return err
	}
	if s.label == nil {
		return &page.MissingElementError{Owner: "slider " + s.id, Element: page.ElementLabel}
	}
	s.label.SetText(text)
	return nil
}
