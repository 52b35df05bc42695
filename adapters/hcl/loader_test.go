package hcl

import (
	"errors"
	"path/filepath"
	"testing"

	"pricing-configurator/core/catalog"
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/page"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
)

func TestLoadFileMatchesBuiltInTable(t *testing.T) {
	result, err := NewLoader().LoadFile(filepath.Join("testdata", "layout.hcl"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !result.TableFromFile || !result.LayoutFromFile {
		t.Fatalf("TableFromFile=%v LayoutFromFile=%v", result.TableFromFile, result.LayoutFromFile)
	}

	builtin := catalog.DefaultTable()
	for _, e := range catalog.Entries {
		for _, p := range types.BillingPeriods() {
			want, _ := builtin.Lookup(e.Tier, e.Dimension, e.Value, p)
			got, err := result.Table.Lookup(e.Tier, e.Dimension, e.Value, p)
			if err != nil {
				t.Errorf("%s.%s[%d]: %v", e.Tier, e.Dimension, e.Value, err)
				continue
			}
			if !got.Equal(want) {
				t.Errorf("%s.%s[%d] %s = %s, want %s", e.Tier, e.Dimension, e.Value, p, got, want)
			}
		}
	}

	if result.Table.Fingerprint() != builtin.Fingerprint() {
		t.Errorf("fingerprint %s, want %s", result.Table.Fingerprint(), builtin.Fingerprint())
	}

	if len(result.Layout.Sliders) != 4 || len(result.Layout.Cards) != 2 {
		t.Fatalf("layout = %+v", result.Layout)
	}
	visio := result.Layout.Sliders[1]
	if visio.Domain.Kind() != slider.KindIndexed || visio.Bounds != catalog.VisioBounds {
		t.Errorf("visio slider = %+v", visio)
	}
	sessions := result.Layout.Sliders[0]
	if sessions.Label != page.LabelIconText || sessions.Icon != "calendar.svg" || sessions.Initial != 40 {
		t.Errorf("sessions slider = %+v", sessions)
	}

	c, err := configurator.New(result.Table, result.Layout)
	if err != nil {
		t.Fatalf("configurator.New: %v", err)
	}
	c.Init()
	if _, err := c.Handle(configurator.SliderInput{SliderID: "starter-sessions", Raw: 80}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Handle(configurator.SliderInput{SliderID: "starter-visio", Raw: 2}); err != nil {
		t.Fatal(err)
	}
	view, _ := c.Snapshot().Card("starter")
	if view.Amount == nil || *view.Amount != "€92.64" {
		t.Errorf("starter amount = %v", view.Amount)
	}
}

func TestParseFallsBackToBuiltIns(t *testing.T) {
	src := `
billing {
  monthly        = "m"
  yearly         = "y"
  default        = "yearly"
  caption_yearly = "Annuel"
}
`
	result, err := NewLoader().Parse([]byte(src), "billing.hcl")
	if err != nil {
		t.Fatal(err)
	}
	if result.TableFromFile || result.LayoutFromFile {
		t.Error("expected built-in table and layout")
	}
	b := result.Layout.Billing
	if b.MonthlyID != "m" || b.YearlyID != "y" || b.Default != types.BillingYearly || b.CaptionYearly != "Annuel" {
		t.Errorf("billing = %+v", b)
	}
	if len(result.Layout.Cards) != 2 {
		t.Errorf("cards = %d", len(result.Layout.Cards))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		errType apperrors.Type
	}{
		{"syntax", `tier "starter" {`, apperrors.TypeParsing},
		{"unknown attribute", `colour = "blue"`, apperrors.TypeParsing},
		{"unknown tier", `tier "gold" {}`, apperrors.TypePricing},
		{"non integer key", `
tier "starter" {
  sessions "forty" {
    monthly = 1
    yearly  = 1
  }
}`, apperrors.TypePricing},
		{"string amount", `
tier "starter" {
  sessions "40" {
    monthly = "cheap"
    yearly  = 1
  }
  visio "0" {
    monthly = 0
    yearly  = 0
  }
}`, apperrors.TypePricing},
		{"tier without visio", `
tier "starter" {
  sessions "40" {
    monthly = 1
    yearly  = 1
  }
}`, apperrors.TypePricing},
		{"direct without bounds", `
slider "s" {
  role = "sessions"
}`, apperrors.TypeConfig},
		{"indexed without sequence", `
slider "v" {
  role = "visio"
}`, apperrors.TypeConfig},
		{"unknown domain", `
slider "v" {
  role     = "visio"
  domain   = "log"
  sequence = [0, 10]
}`, apperrors.TypeConfig},
		{"bad omit", `
card "c" {
  tier     = "starter"
  sessions = "s"
  visio    = "v"
  omit     = ["heading"]
}`, apperrors.TypeConfig},
		{"two billing blocks", `
billing {
  monthly = "m"
  yearly  = "y"
}
billing {
  monthly = "a"
  yearly  = "b"
}`, apperrors.TypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), "test.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.IsType(err, tt.errType) {
				t.Errorf("error %v is not %s", err, tt.errType)
			}
		})
	}
}

func TestMismatchedLayoutFailsConstruction(t *testing.T) {
	src := `
slider "starter-sessions" {
  role = "sessions"
  min  = 40
  max  = 160
  step = 40
}

slider "starter-visio" {
  role     = "visio"
  sequence = [0, 10, 20, 50]
}

card "starter" {
  tier     = "starter"
  sessions = "starter-sessions"
  visio    = "starter-visio"
}
`
	result, err := NewLoader().Parse([]byte(src), "mismatch.hcl")
	if err != nil {
		t.Fatal(err)
	}

	_, err = configurator.New(result.Table, result.Layout)
	var dv *pricing.DomainValueError
	if !errors.As(err, &dv) {
		t.Fatalf("expected DomainValueError, got %v", err)
	}
	if dv.Value != 160 || dv.Dimension != types.DimensionSessions {
		t.Errorf("error = %+v", dv)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	if !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("error %v is not a config error", err)
	}
}
