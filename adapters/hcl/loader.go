// Package hcl loads price tables and page layouts from HCL files.
package hcl

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"pricing-configurator/core/catalog"
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/page"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/slider"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
)

type layoutFile struct {
	Currency string         `hcl:"currency,optional"`
	Tiers    []tierBlock    `hcl:"tier,block"`
	Sliders  []sliderBlock  `hcl:"slider,block"`
	Cards    []cardBlock    `hcl:"card,block"`
	Billing  []billingBlock `hcl:"billing,block"`
}

type tierBlock struct {
	Name     string      `hcl:"name,label"`
	Sessions []rateBlock `hcl:"sessions,block"`
	Visio    []rateBlock `hcl:"visio,block"`
}

type rateBlock struct {
	Value   string         `hcl:"value,label"`
	Monthly hcl.Expression `hcl:"monthly"`
	Yearly  hcl.Expression `hcl:"yearly"`
}

type sliderBlock struct {
	ID       string `hcl:"id,label"`
	Role     string `hcl:"role"`
	Domain   string `hcl:"domain,optional"`
	Min      *int   `hcl:"min,optional"`
	Max      *int   `hcl:"max,optional"`
	Step     *int   `hcl:"step,optional"`
	Sequence []int  `hcl:"sequence,optional"`
	Unit     string `hcl:"unit,optional"`
	Label    string `hcl:"label,optional"`
	Icon     string `hcl:"icon,optional"`
	Initial  *int   `hcl:"initial,optional"`
}

type cardBlock struct {
	ID       string   `hcl:"id,label"`
	Heading  string   `hcl:"heading,optional"`
	Tier     string   `hcl:"tier"`
	Sessions string   `hcl:"sessions"`
	Visio    string   `hcl:"visio"`
	Omit     []string `hcl:"omit,optional"`
}

type billingBlock struct {
	Monthly        string `hcl:"monthly"`
	Yearly         string `hcl:"yearly"`
	Default        string `hcl:"default,optional"`
	CaptionMonthly string `hcl:"caption_monthly,optional"`
	CaptionYearly  string `hcl:"caption_yearly,optional"`
}

// Result is a loaded layout file
type Result struct {
	Table  *pricing.PriceTable
	Layout configurator.Layout

	// TableFromFile is false when the file has no tier blocks and the
	// built-in table is used
	TableFromFile bool

	// LayoutFromFile is false when the file has no card or slider blocks
	// and the built-in layout is used
	LayoutFromFile bool
}

// Loader parses layout files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// LoadFile reads and parses a layout file
func (l *Loader) LoadFile(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeConfig, err, "failed to read layout %s", path)
	}
	return l.Parse(src, path)
}

// Parse parses layout source; filename is used in diagnostics
func (l *Loader) Parse(src []byte, filename string) (*Result, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, apperrors.Parsing("invalid layout "+filename, diags)
	}

	var lf layoutFile
	if diags := gohcl.DecodeBody(file.Body, nil, &lf); diags.HasErrors() {
		return nil, apperrors.Parsing("invalid layout "+filename, diags)
	}

	result := &Result{
		Table:  catalog.DefaultTable(),
		Layout: catalog.DefaultLayout(),
	}

	if len(lf.Tiers) > 0 {
		table, err := buildTable(lf)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypePricing, err, "layout %s", filename)
		}
		result.Table = table
		result.TableFromFile = true
	}

	if len(lf.Sliders) > 0 || len(lf.Cards) > 0 {
		layout, err := buildLayout(lf)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeConfig, err, "layout %s", filename)
		}
		result.Layout = layout
		result.LayoutFromFile = true
	} else if len(lf.Billing) > 0 {
		spec, err := buildBilling(lf.Billing)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeConfig, err, "layout %s", filename)
		}
		result.Layout.Billing = spec
	}

	return result, nil
}

func buildTable(lf layoutFile) (*pricing.PriceTable, error) {
	currency := catalog.Currency
	if lf.Currency != "" {
		currency = types.Currency(lf.Currency)
	}

	b := pricing.NewBuilder(currency)
	for _, tb := range lf.Tiers {
		tier, ok := types.ParseTier(tb.Name)
		if !ok {
			return nil, fmt.Errorf("unknown tier %q", tb.Name)
		}
		for _, group := range []struct {
			dim   types.Dimension
			rates []rateBlock
		}{
			{types.DimensionSessions, tb.Sessions},
			{types.DimensionVisio, tb.Visio},
		} {
			dim := group.dim
			for _, rb := range group.rates {
				value, err := strconv.Atoi(rb.Value)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: value label %q is not an integer", tier, dim, rb.Value)
				}
				monthly, err := amount(rb.Monthly)
				if err != nil {
					return nil, fmt.Errorf("%s.%s[%d].monthly: %w", tier, dim, value, err)
				}
				yearly, err := amount(rb.Yearly)
				if err != nil {
					return nil, fmt.Errorf("%s.%s[%d].yearly: %w", tier, dim, value, err)
				}
				b.Set(tier, dim, value, monthly, yearly)
			}
		}
	}
	return b.Freeze()
}

// amount evaluates a numeric literal without going through float64
func amount(expr hcl.Expression) (decimal.Decimal, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, diags
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.Number) {
		return decimal.Zero, fmt.Errorf("want a number, got %s", val.Type().FriendlyName())
	}
	return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
}

func buildLayout(lf layoutFile) (configurator.Layout, error) {
	var layout configurator.Layout

	for _, sb := range lf.Sliders {
		spec, err := buildSlider(sb)
		if err != nil {
			return layout, fmt.Errorf("slider %s: %w", sb.ID, err)
		}
		layout.Sliders = append(layout.Sliders, spec)
	}

	for _, cb := range lf.Cards {
		tier, ok := types.ParseTier(cb.Tier)
		if !ok {
			return layout, fmt.Errorf("card %s: unknown tier %q", cb.ID, cb.Tier)
		}
		for _, o := range cb.Omit {
			if o != page.ElementAmount && o != page.ElementCaption {
				return layout, fmt.Errorf("card %s: cannot omit %q", cb.ID, o)
			}
		}
		layout.Cards = append(layout.Cards, configurator.CardSpec{
			ID:       cb.ID,
			Heading:  cb.Heading,
			Tier:     tier,
			Sessions: cb.Sessions,
			Visio:    cb.Visio,
			Omit:     cb.Omit,
		})
	}

	if len(lf.Billing) == 0 {
		layout.Billing = catalog.DefaultLayout().Billing
		return layout, nil
	}
	spec, err := buildBilling(lf.Billing)
	if err != nil {
		return layout, err
	}
	layout.Billing = spec
	return layout, nil
}

func buildSlider(sb sliderBlock) (configurator.SliderSpec, error) {
	spec := configurator.SliderSpec{
		ID:    sb.ID,
		Role:  slider.Role(sb.Role),
		Unit:  sb.Unit,
		Label: page.LabelKind(sb.Label),
		Icon:  sb.Icon,
	}

	kind := slider.DomainKind(sb.Domain)
	if kind == "" {
		kind = slider.KindDirect
		if spec.Role == slider.RoleVisio {
			kind = slider.KindIndexed
		}
	}

	switch kind {
	case slider.KindDirect:
		if sb.Min == nil || sb.Max == nil {
			return spec, fmt.Errorf("direct domain needs min and max")
		}
		if len(sb.Sequence) > 0 {
			return spec, fmt.Errorf("direct domain takes no sequence")
		}
		spec.Domain = slider.DirectDomain{}
		spec.Bounds = slider.Bounds{Min: *sb.Min, Max: *sb.Max, Step: 1}
	case slider.KindIndexed:
		if len(sb.Sequence) == 0 {
			return spec, fmt.Errorf("indexed domain needs a sequence")
		}
		spec.Domain = slider.NewIndexedDomain(sb.Sequence...)
		spec.Bounds = slider.Bounds{Min: 0, Max: len(sb.Sequence) - 1, Step: 1}
		if sb.Min != nil {
			spec.Bounds.Min = *sb.Min
		}
		if sb.Max != nil {
			spec.Bounds.Max = *sb.Max
		}
	default:
		return spec, fmt.Errorf("unknown domain %q", sb.Domain)
	}

	if sb.Step != nil {
		spec.Bounds.Step = *sb.Step
	}
	spec.Initial = spec.Bounds.Min
	if sb.Initial != nil {
		spec.Initial = *sb.Initial
	}
	return spec, nil
}

func buildBilling(blocks []billingBlock) (configurator.BillingSpec, error) {
	if len(blocks) > 1 {
		return configurator.BillingSpec{}, fmt.Errorf("at most one billing block, got %d", len(blocks))
	}
	bb := blocks[0]
	spec := configurator.BillingSpec{
		MonthlyID:      bb.Monthly,
		YearlyID:       bb.Yearly,
		Default:        types.DefaultBillingPeriod,
		CaptionMonthly: bb.CaptionMonthly,
		CaptionYearly:  bb.CaptionYearly,
	}
	if bb.Default != "" {
		p, ok := types.ParseBillingPeriod(bb.Default)
		if !ok {
			return spec, fmt.Errorf("unknown default billing period %q", bb.Default)
		}
		spec.Default = p
	}
	return spec, nil
}
