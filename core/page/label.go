package page

import "fmt"

// LabelKind is the layout of a slider's value label
type LabelKind string

const (
	// LabelText is a plain text element
	LabelText LabelKind = "text"

	// LabelIconText is a wrapper holding an icon followed by text
	LabelIconText LabelKind = "icon_text"

	// LabelNone means the page has no label for the slider
	LabelNone LabelKind = "none"
)

// Label is a slider value label. The variant is fixed when the slider is
// registered; updates only ever touch the text part.
type Label interface {
	Kind() LabelKind
	SetText(s string)
	Text() string
}

// TextLabel is a label that is nothing but text
type TextLabel struct {
	text string
}

func (l *TextLabel) Kind() LabelKind { return LabelText }
func (l *TextLabel) SetText(s string) { l.text = s }
func (l *TextLabel) Text() string { return l.text }

// IconTextLabel keeps its icon and replaces only the text beside it
type IconTextLabel struct {
	Icon string
	text string
}

func (l *IconTextLabel) Kind() LabelKind { return LabelIconText }
func (l *IconTextLabel) SetText(s string) { l.text = s }
func (l *IconTextLabel) Text() string { return l.text }

// NewLabel creates the label variant for kind. LabelNone returns nil.
func NewLabel(kind LabelKind, icon string) (Label, error) {
	switch kind {
	case LabelText, "":
		return &TextLabel{}, nil
	case LabelIconText:
		if icon == "" {
			return nil, fmt.Errorf("icon_text label requires an icon")
		}
		return &IconTextLabel{Icon: icon}, nil
	case LabelNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown label kind %q", kind)
	}
}
