package raster

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Style selects a font face style.
type Style int

const (
	// StyleRegular is the upright book weight.
	StyleRegular Style = iota
	// StyleBold is the bold weight.
	StyleBold
	// StyleItalic is the slanted upright weight.
	StyleItalic
	// StyleBoldItalic combines bold weight and italic slant.
	StyleBoldItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "Regular"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// Bold reports whether the style carries bold weight.
func (s Style) Bold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// Italic reports whether the style carries an italic slant.
func (s Style) Italic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// SpacingMode selects one of the two measurement modes of the
// rasterization capability.
type SpacingMode int

const (
	// SpacingNatural renders the glyph at its natural pen position,
	// side bearings included, using the backend's default (hinted)
	// rendering.
	SpacingNatural SpacingMode = iota
	// SpacingTight renders the glyph flush against the left bitmap
	// edge using typographic (unhinted) metrics.
	SpacingTight
)

// String returns the string representation of the spacing mode.
func (m SpacingMode) String() string {
	switch m {
	case SpacingNatural:
		return "Natural"
	case SpacingTight:
		return "Tight"
	default:
		return unknownStr
	}
}

// Hinting specifies glyph outline grid-fitting.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}
