package raster

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for the raster package.
var (
	// ErrInvalidFontData is returned when font bytes are empty or cannot
	// be parsed as a font program. This is a fatal input error; no
	// fallback substitution applies.
	ErrInvalidFontData = errors.New("raster: invalid font data")
)

// FaceError reports that a parsed font could not be instantiated as a
// face at the requested size and style. Callers recover from it by
// substituting the Fallback face and surfacing a warning diagnostic.
type FaceError struct {
	Backend string
	Err     error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("raster: backend %q could not instantiate face: %v", e.Backend, e.Err)
}

func (e *FaceError) Unwrap() error { return e.Err }

// FamilyMetrics holds family-level metrics in font design units.
// Scaling to pixels is size/EmHeight.
type FamilyMetrics struct {
	// LineSpacing is the recommended baseline-to-baseline distance.
	LineSpacing int

	// EmHeight is the size of the em square (units per em).
	EmHeight int

	// CellAscent is the distance from the baseline to the cell top.
	CellAscent int

	// CellDescent is the distance from the baseline to the cell bottom.
	CellDescent int
}

// Face is a font face instantiated at a specific size and style.
// It is the external rasterization capability fontpack builds on.
//
// Implementations must be safe for concurrent use: the shaping stage
// may call Measure and Rasterize from multiple goroutines.
type Face interface {
	// Measure returns the natural cell size of text in pixels: the
	// advance width (with one pixel of headroom) and the line height.
	Measure(text string) (width, height int)

	// Rasterize renders text into an 8-bit coverage bitmap of at least
	// width x height pixels. SpacingNatural places the glyph at its pen
	// position inside the cell; SpacingTight places it flush against
	// the left edge with typographic metrics. When antialias is false
	// the coverage is binarized.
	Rasterize(text string, mode SpacingMode, width, height int, antialias bool) (*image.Alpha, error)

	// Family returns family-level metrics in design units.
	Family() FamilyMetrics

	// Size returns the face's point size.
	Size() float64

	// Style returns the face's style.
	Style() Style
}

// Open parses font data (TTF or OTF) and instantiates a face at the
// given size and style using the configured backend.
//
// Open returns ErrInvalidFontData when the bytes are not a font, and a
// *FaceError when the font parses but the face cannot be created.
// A single font binary carries one design; Style is recorded on the
// face and checked against the font's own aspect by Describe, it does
// not synthesize bold or italic variants.
func Open(data []byte, size float64, style Style, opts ...Option) (Face, error) {
	if len(data) == 0 {
		return nil, ErrInvalidFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return getBackend(cfg.Backend).Open(data, size, style, cfg)
}
