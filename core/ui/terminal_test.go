package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFillBar(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, true)

	tests := []struct {
		pct    string
		filled int
	}{
		{"0", 0},
		{"33.3333", 8},
		{"50", 12},
		{"100", FillBarWidth},
		{"140", FillBarWidth},
		{"-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.pct, func(t *testing.T) {
			bar := w.FillBar(decimal.RequireFromString(tt.pct))
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != FillBarWidth {
				t.Errorf("bar width = %d", got)
			}
		})
	}
}

func TestTableAlignsByRunes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	tbl := w.NewTable("Tier", "Total")
	tbl.AddRow("starter", "€43.20")
	tbl.AddRow("expert", "€90.00", "ignored")
	tbl.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[2] != "starter │ €43.20" || lines[3] != "expert  │ €90.00" {
		t.Errorf("rows = %q, %q", lines[2], lines[3])
	}
	if strings.Contains(buf.String(), "ignored") {
		t.Error("extra cell rendered")
	}
}

func TestColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, true).Price("€43.20", "Par mois")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("escape codes with color disabled: %q", buf.String())
	}

	buf.Reset()
	NewWriter(&buf, false).Price("€43.20", "Par mois")
	if !strings.Contains(buf.String(), Green) {
		t.Errorf("no color codes: %q", buf.String())
	}
}
