// Package page models the elements the configurator writes into.
// The surrounding page owns these elements; the engine only sets text and
// style on them. A nil element means the page does not provide it.
package page

import "fmt"

// Element names used in MissingElementError
const (
	ElementAmount  = "amount"
	ElementCaption = "caption"
	ElementLabel   = "label"
)

// MissingElementError reports an expected element that is absent.
// The piece it would have carried is skipped; nothing else is aborted.
type MissingElementError struct {
	Owner   string
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%s has no %s element", e.Owner, e.Element)
}

// Text is a text-bearing element such as the amount display or caption
type Text struct {
	value string
}

// NewText creates a text element with initial content
func NewText(initial string) *Text {
	return &Text{value: initial}
}

// Set replaces the element's text
func (t *Text) Set(s string) {
	t.value = s
}

// String returns the element's text
func (t *Text) String() string {
	return t.value
}

// Style is the inline style of a range control
type Style struct {
	BackgroundImage  string `json:"background_image"`
	BackgroundSize   string `json:"background_size"`
	BackgroundRepeat string `json:"background_repeat"`
}

// CSS renders the style as an inline declaration list
func (s Style) CSS() string {
	return fmt.Sprintf("background-image: %s; background-size: %s; background-repeat: %s",
		s.BackgroundImage, s.BackgroundSize, s.BackgroundRepeat)
}

// Card is one pricing card's output elements
type Card struct {
	ID      string
	Heading string
	Amount  *Text
	Caption *Text
}

// SetAmount writes the amount display
func (c *Card) SetAmount(s string) error {
	if c.Amount == nil {
		return &MissingElementError{Owner: "card " + c.ID, Element: ElementAmount}
	}
	c.Amount.Set(s)
	return nil
}

// SetCaption writes the period caption
func (c *Card) SetCaption(s string) error {
	if c.Caption == nil {
		return &MissingElementError{Owner: "card " + c.ID, Element: ElementCaption}
	}
	c.Caption.Set(s)
	return nil
}
