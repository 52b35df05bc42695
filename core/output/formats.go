package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"pricing-configurator/core/types"
)

// JSONFormatter writes the result as JSON
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) Format() Format { return FormatJSON }

func (f *JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// MarkdownFormatter writes markdown tables
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

func (f *MarkdownFormatter) Render(w io.Writer, result *Result) error {
	var b strings.Builder

	if len(result.Quotes) > 0 {
		b.WriteString("| Tier | Sessions | Visio | Period | Total |\n")
		b.WriteString("|------|---------:|------:|--------|------:|\n")
		for _, q := range result.Quotes {
			fmt.Fprintf(&b, "| %s | %d | %dh | %s | %s |\n",
				q.Tier, q.SessionValue, q.VisioHours, q.Period, q.Total)
		}
	}

	for _, page := range result.Pages {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if page.Event != "" {
			fmt.Fprintf(&b, "### After `%s`\n\n", page.Event)
		} else {
			b.WriteString("### Pricing\n\n")
		}
		fmt.Fprintf(&b, "Billing: **%s**\n\n", page.Period)
		b.WriteString("| Card | Tier | Sessions | Visio | Amount | Caption |\n")
		b.WriteString("|------|------|----------|-------|-------:|---------|\n")
		for _, c := range page.Cards {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				c.ID, c.Tier,
				deref(c.Sessions.LabelText, ""), deref(c.Visio.LabelText, ""),
				deref(c.Amount, types.AmountPlaceholder), deref(c.Caption, ""))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// HTMLFormatter writes the pricing cards as an HTML fragment
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format() Format { return FormatHTML }

var htmlTemplate = template.Must(template.New("cards").Funcs(template.FuncMap{
	"deref": deref,
}).Parse(`{{range .Pages}}<section class="pricing" data-period="{{.Period}}">
  <div class="pricing-toggle">
{{- range .Controls}}
    <button class="toggle-btn{{if .Selected}} active{{end}}" id="{{.ID}}">{{.Period}}</button>
{{- end}}
  </div>
{{- range .Cards}}
  <div class="pricing-card" data-tier="{{.Tier}}" id="{{.ID}}">
    <div class="card-header"><h3>{{.Heading}}</h3></div>
{{- with .Sessions}}
    <div class="slider-group">
      <input type="range" class="pricing-range session-range" min="{{.Bounds.Min}}" max="{{.Bounds.Max}}" step="{{.Bounds.Step}}" value="{{.Raw}}" style="{{$.CSS .Style}}">
      <div class="slider-value">{{if .LabelIcon}}<img src="{{.LabelIcon}}" alt=""> {{end}}<p>{{deref .LabelText ""}}</p></div>
    </div>
{{- end}}
{{- with .Visio}}
    <div class="slider-group">
      <input type="range" class="pricing-range visio-range" min="{{.Bounds.Min}}" max="{{.Bounds.Max}}" step="{{.Bounds.Step}}" value="{{.Raw}}" style="{{$.CSS .Style}}">
      <div class="slider-value">{{if .LabelIcon}}<img src="{{.LabelIcon}}" alt=""> {{end}}<p>{{deref .LabelText ""}}</p></div>
    </div>
{{- end}}
    <p class="amount">{{deref .Amount "—"}}</p>
    <p class="period">{{deref .Caption ""}}</p>
  </div>
{{- end}}
</section>
{{end}}`))

type htmlData struct {
	*Result
}

// CSS marks a generated inline style as safe for the style attribute
func (htmlData) CSS(s interface{ CSS() string }) template.CSS {
	return template.CSS(s.CSS())
}

func (f *HTMLFormatter) Render(w io.Writer, result *Result) error {
	return htmlTemplate.Execute(w, htmlData{Result: result})
}
