package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"pricing-configurator/core/configurator"
	"pricing-configurator/core/types"
	"pricing-configurator/core/ui"
)

// CLIFormatter renders tables and card boxes for a terminal
type CLIFormatter struct {
	NoColor bool
}

func (f *CLIFormatter) Format() Format { return FormatCLI }

func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.NoColor)

	if len(result.Quotes) > 0 {
		t := out.NewTable("Tier", "Sessions", "Visio", "Period", "Sessions amount", "Visio amount", "Total")
		for _, q := range result.Quotes {
			t.AddRow(
				q.Tier.String(),
				strconv.Itoa(q.SessionValue),
				fmt.Sprintf("%dh", q.VisioHours),
				q.Period.String(),
				q.SessionsAmount.StringFixed(2),
				q.VisioAmount.StringFixed(2),
				q.Total.String(),
			)
		}
		t.Render()
	}

	for _, page := range result.Pages {
		title := "Pricing"
		if page.Event != "" {
			title = "After " + page.Event
		}
		out.Header(title)
		out.Println("Billing: %s", page.Period)

		for _, c := range page.Cards {
			heading := c.Heading
			if heading == "" {
				heading = c.ID
			}
			out.SubHeader(fmt.Sprintf("%s (%s)", heading, c.Tier))
			f.slider(out, c.Sessions)
			f.slider(out, c.Visio)

			amount, caption := types.AmountPlaceholder, ""
			if c.Amount != nil {
				amount = *c.Amount
			}
			if c.Caption != nil {
				caption = *c.Caption
			}
			out.Price(amount, caption)
			if c.Error != "" {
				out.Error("%s", c.Error)
			}
			out.Println("")
		}

		for _, s := range page.Sliders {
			f.slider(out, s)
		}
	}
	return nil
}

func (f *CLIFormatter) slider(out *ui.Writer, s configurator.SliderView) {
	label := "(no label)"
	if s.LabelText != nil {
		label = *s.LabelText
	}
	pct, err := decimal.NewFromString(s.FillPercent)
	if err != nil {
		pct = decimal.Zero
	}
	out.Println("  %-10s %s %6s%%  %s", s.Role, out.FillBar(pct), s.FillPercent, label)
}
