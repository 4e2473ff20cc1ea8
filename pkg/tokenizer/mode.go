package tokenizer

import "strings"

// Mode selects how whitespace is treated.
type Mode int

const (
	// ModeNormal collapses every whitespace run into a single space token.
	ModeNormal Mode = iota
	// ModePreformatted copies text verbatim; only tab and newline form tokens.
	ModePreformatted
	// ModePreWrap gives tab and newline their own tokens and collapses other
	// whitespace like ModeNormal.
	ModePreWrap
)

// ParseMode maps a white-space keyword to a Mode. Unknown values give ModeNormal.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preformatted":
		return ModePreformatted
	case "pre-wrap", "prewrap":
		return ModePreWrap
	default:
		return ModeNormal
	}
}

func (m Mode) String() string {
	switch m {
	case ModePreformatted:
		return "pre"
	case ModePreWrap:
		return "pre-wrap"
	default:
		return "normal"
	}
}

func (m Mode) valid() bool {
	return m >= ModeNormal && m <= ModePreWrap
}

// Transform is the case transform applied to non-whitespace tokens.
type Transform int

const (
	TransformNone Transform = iota
	TransformCapitalize
	TransformUppercase
	TransformLowercase
)

// ParseTransform maps a text-transform keyword. Unknown values give TransformNone.
func ParseTransform(s string) Transform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "capitalize":
		return TransformCapitalize
	case "uppercase", "upper":
		return TransformUppercase
	case "lowercase", "lower":
		return TransformLowercase
	default:
		return TransformNone
	}
}

func (t Transform) String() string {
	switch t {
	case TransformCapitalize:
		return "capitalize"
	case TransformUppercase:
		return "uppercase"
	case TransformLowercase:
		return "lowercase"
	default:
		return "none"
	}
}
