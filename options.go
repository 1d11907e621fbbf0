package fontpack

import (
	"runtime"

	"github.com/gogpu/fontpack/raster"
)

// Options holds the style parameters for one font import.
// The zero value is not valid; start from DefaultOptions.
type Options struct {
	// Size is the point size. Must be positive.
	Size float64

	// Style selects the face style (regular, bold, italic, bold italic).
	Style raster.Style

	// Antialias enables antialiased coverage. When false, coverage is
	// binarized by the rasterization backend.
	Antialias bool

	// Monospace forces uniform advances across all glyphs and disables
	// kerning inference.
	Monospace bool

	// ExtendedCharSet is appended to the default repertoire.
	// Ignored when Repertoire is set.
	ExtendedCharSet []rune

	// Repertoire overrides the default repertoire entirely when non-nil.
	Repertoire *Repertoire

	// Backend names the rasterizer backend. Empty selects the default
	// ("ximage"). See raster.RegisterBackend.
	Backend string

	// ShapeWorkers bounds the number of goroutines used for per-glyph
	// shaping. Values below 2 shape serially. Packing order is
	// deterministic regardless of worker count.
	ShapeWorkers int
}

// DefaultOptions returns the default import configuration:
// 16pt regular, antialiased, proportional spacing, printable ASCII.
func DefaultOptions() Options {
	return Options{
		Size:         16,
		Style:        raster.StyleRegular,
		Antialias:    true,
		ShapeWorkers: runtime.GOMAXPROCS(0),
	}
}

// Validate checks if the configuration is valid.
func (o *Options) Validate() error {
	if o.Size <= 0 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if o.ShapeWorkers < 0 {
		return &ConfigError{Field: "ShapeWorkers", Reason: "must be non-negative"}
	}
	return nil
}

// repertoire resolves the repertoire this import will render.
func (o *Options) repertoire() *Repertoire {
	if o.Repertoire != nil {
		return o.Repertoire
	}
	return DefaultRepertoire(o.ExtendedCharSet...)
}
