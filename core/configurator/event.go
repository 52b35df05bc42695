package configurator

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "pricing-configurator/internal/errors"
)

// Event is a user interaction the configurator reacts to
type Event interface {
	fmt.Stringer
	event()
}

// SliderInput: a slider moved to a new raw position
type SliderInput struct {
	SliderID string
	Raw      int
}

func (SliderInput) event() {}

func (e SliderInput) String() string {
	return fmt.Sprintf("%s=%d", e.SliderID, e.Raw)
}

// BillingSelect: a billing control was clicked
type BillingSelect struct {
	ControlID string
}

func (BillingSelect) event() {}

func (e BillingSelect) String() string {
	return BillingKey + "=" + e.ControlID
}

// BillingKey is the left-hand side that makes ParseEvent produce a
// BillingSelect
const BillingKey = "billing"

// ParseEvent reads "<slider-id>=<position>" or "billing=<control-id>"
func ParseEvent(s string) (Event, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return nil, apperrors.Parsing(fmt.Sprintf("event %q", s), fmt.Errorf("want <slider>=<position> or %s=<control>", BillingKey))
	}

	if key == BillingKey {
		return BillingSelect{ControlID: value}, nil
	}

	raw, err := strconv.Atoi(value)
	if err != nil {
		return nil, apperrors.Parsing(fmt.Sprintf("event %q", s), err)
	}
	return SliderInput{SliderID: key, Raw: raw}, nil
}

// ParseEvents parses each argument in order
func ParseEvents(args []string) ([]Event, error) {
	events := make([]Event, 0, len(args))
	for _, a := range args {
		ev, err := ParseEvent(a)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
