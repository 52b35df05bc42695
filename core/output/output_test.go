package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pricing-configurator/core/catalog"
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/types"
)

func sampleResult(t *testing.T) *Result {
	t.Helper()
	table := catalog.DefaultTable()
	q, err := table.Quote(pricing.Selection{Tier: types.TierStarter, SessionValue: 80, VisioHours: 20, Period: types.BillingMonthly})
	if err != nil {
		t.Fatal(err)
	}

	c, err := configurator.New(table, catalog.DefaultLayout(), configurator.WithSessionID("out"))
	if err != nil {
		t.Fatal(err)
	}
	c.Init()
	if _, err := c.Handle(configurator.BillingSelect{ControlID: catalog.YearlyControlID}); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	snap.Event = "billing=" + catalog.YearlyControlID

	return &Result{
		Quotes:   []pricing.Quote{q},
		Pages:    []*configurator.Snapshot{snap},
		Metadata: Metadata{Version: "test"},
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(true)

	got := r.Formats()
	want := []Format{FormatCLI, FormatHTML, FormatJSON, FormatMarkdown}
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if _, err := r.Get("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := r.Register(&JSONFormatter{}); err == nil {
		t.Error("expected error registering json twice")
	}
}

func TestRenderFormats(t *testing.T) {
	result := sampleResult(t)

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatCLI, []string{"€92.64", "After billing=yearlyBtn", "€36.00", "Par mois (facturé annuellement)", "40 séances"}},
		{FormatMarkdown, []string{"| starter | 80 | 20h | monthly | €92.64 |", "### After `billing=yearlyBtn`", "| expert | expert | 40 séances | 0 heures | €75.00 |"}},
		{FormatHTML, []string{`id="yearlyBtn">yearly`, "toggle-btn active", `<p class="amount">€36.00</p>`, "background-size: 0% 100%", `<img src="calendar.svg"`}},
	}

	r := NewRegistry(true)
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := r.Get(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := f.Render(&buf, result); err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("%s output missing %q:\n%s", tt.format, w, buf.String())
				}
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleResult(t)); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Pages []struct {
			Session string `json:"session"`
			Period  string `json:"period"`
			Cards   []struct {
				ID      string `json:"id"`
				Amount  string `json:"amount"`
				Caption string `json:"caption"`
			} `json:"cards"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(decoded.Pages) != 1 || decoded.Pages[0].Period != "yearly" || decoded.Pages[0].Session != "out" {
		t.Fatalf("pages = %+v", decoded.Pages)
	}
	if cards := decoded.Pages[0].Cards; len(cards) != 2 || cards[1].Amount != "€75.00" {
		t.Errorf("cards = %+v", cards)
	}
}
