package fontpack

import (
	"errors"
	"fmt"

	"github.com/gogpu/fontpack/raster"
)

// Diagnostic is a non-fatal notice produced during import.
type Diagnostic struct {
	// Recovered reports whether the import substituted a fallback face
	// and continued; false marks a purely informational notice. Fatal
	// conditions are returned as errors, never as diagnostics.
	Recovered bool
	Message   string
}

// Import converts raw font-program bytes plus style parameters into a
// FontAsset. The build is a pure function of its inputs: importing the
// same bytes with the same options yields a byte-identical atlas and
// identical glyph and kerning tables.
//
// When the requested face cannot be instantiated, Import substitutes
// the fallback monospace family (Go Mono) at the same size and style
// and reports the substitution as a recovered Diagnostic. Malformed or
// empty font bytes fail the import outright; no partial asset is ever
// produced.
func Import(data []byte, opts Options) (*FontAsset, []Diagnostic, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyFontData
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	rep := opts.repertoire()
	if err := rep.Validate(); err != nil {
		return nil, nil, err
	}

	var diags []Diagnostic

	face, err := raster.Open(data, opts.Size, opts.Style, raster.WithBackend(opts.Backend))
	switch {
	case err == nil:
		if desc, derr := raster.Describe(data); derr == nil && !desc.Matches(opts.Style) {
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("font %q does not carry style %s; rendering its native design", desc.Family, opts.Style),
			})
		}
	case errors.Is(err, raster.ErrInvalidFontData):
		return nil, nil, fmt.Errorf("fontpack: import failed: %w", err)
	default:
		// The face could not be instantiated; recover with the fallback
		// family through the default backend.
		fallback, ferr := raster.Fallback(opts.Size, opts.Style)
		if ferr != nil {
			return nil, nil, fmt.Errorf("fontpack: import failed: %w", err)
		}
		Logger().Warn("fontpack: substituted fallback face",
			"fallback", raster.FallbackFamilyName, "error", err)
		diags = append(diags, Diagnostic{
			Recovered: true,
			Message:   fmt.Sprintf("could not instantiate requested face (%v); substituted %s", err, raster.FallbackFamilyName),
		})
		face = fallback
	}

	asset, err := BuildAsset(face, rep, opts)
	if err != nil {
		return nil, nil, err
	}
	return asset, diags, nil
}

// BuildAsset runs the baking pipeline against an already-open face:
// shaping, atlas packing, metric aggregation, kerning inference and
// final assembly. It is exported so custom raster.Face implementations
// can be baked without going through Import.
//
// Any stage error aborts the whole build; there is no partial or
// degraded asset.
func BuildAsset(face raster.Face, rep *Repertoire, opts Options) (*FontAsset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}

	shaper := newGlyphShaper(face, opts)
	glyphs, err := shaper.shapeAll(rep.Runes())
	if err != nil {
		return nil, err
	}

	atlas, rects, err := packAtlas(glyphs, shaper.cellHeight)
	if err != nil {
		return nil, err
	}

	metrics, err := aggregateMetrics(glyphs, rep, face.Family(), opts, shaper.cellHeight)
	if err != nil {
		return nil, err
	}

	kerning := inferKerning(glyphs, metrics)

	records := make([]GlyphRecord, len(glyphs))
	for i := range glyphs {
		records[i] = glyphs[i].rec
	}
	return newFontAsset(atlas, records, rects, metrics, kerning)
}
