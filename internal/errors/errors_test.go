package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsTypeWalksChain(t *testing.T) {
	base := stderrors.New("boom")
	inner := Wrap(TypeNotFound, "control missing", base)
	outer := Wrapf(TypeInput, inner, "event %s", "billing=x")
	wrapped := fmt.Errorf("simulate: %w", outer)

	tests := []struct {
		t    Type
		want bool
	}{
		{TypeInput, true},
		{TypeNotFound, true},
		{TypeConfig, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.t), func(t *testing.T) {
			if got := IsType(wrapped, tt.t); got != tt.want {
				t.Errorf("IsType(%s) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if !stderrors.Is(wrapped, base) {
		t.Error("cause lost in chain")
	}
	if IsType(base, TypeInput) || IsType(nil, TypeInput) {
		t.Error("plain error reported a type")
	}
}

func TestErrorString(t *testing.T) {
	if got := NotFound("slider", "pro-visio").Error(); got != "[NOT_FOUND] slider not found: pro-visio" {
		t.Errorf("Error() = %q", got)
	}
	if got := Parsing("event \"x\"", stderrors.New("no =")).Error(); got != `[PARSING_ERROR] event "x": no =` {
		t.Errorf("Error() = %q", got)
	}

	e := Inputf("bad %d", 3).WithContext("slider", "s")
	if !e.Is(TypeInput) || e.Context["slider"] != "s" {
		t.Errorf("unexpected %+v", e)
	}
}
