package fontpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontpack.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontpack: empty font data")

	// ErrEmptyRepertoire is returned when a repertoire resolves to zero characters.
	ErrEmptyRepertoire = errors.New("fontpack: repertoire has no characters")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontpack: invalid config." + e.Field + ": " + e.Reason
}

// PackingOverflowError is returned when a glyph bitmap cannot be placed
// within the atlas bounds. The packer fails loudly rather than clipping
// pixels silently.
type PackingOverflowError struct {
	Char       rune
	GlyphWidth int
	AtlasWidth int
}

func (e *PackingOverflowError) Error() string {
	return fmt.Sprintf("fontpack: glyph %q (width %d) does not fit atlas width %d",
		e.Char, e.GlyphWidth, e.AtlasWidth)
}
