package fontpack

import (
	"math"

	"github.com/gogpu/fontpack/raster"
)

// FontMetrics holds the scalar aggregates describing the whole font at
// the imported style. Computed once per import, immutable thereafter.
type FontMetrics struct {
	// PointSize is the requested size in points.
	PointSize float64

	// CellHeight is the full line-height cell every glyph occupies.
	CellHeight int

	// Ascent is derived from the family's cell ascent scaled to the
	// requested size, independent of repertoire sampling.
	Ascent int

	// BodyAscent is the average opaque height of the body-ascent
	// reference glyphs (roughly the x-height).
	BodyAscent float64

	// Baseline is the average distance from the cell top to the visual
	// baseline, as implied by the baseline reference glyphs.
	Baseline float64

	// Descent is the distance below the baseline reached by the
	// descent reference glyphs.
	Descent int

	// Monospace is carried through verbatim from configuration.
	Monospace bool
}

// aggregateMetrics derives the font-wide metrics from the family
// metrics and the shaped reference glyphs.
//
// The reference subsets were validated non-empty before shaping began;
// the check is repeated here so the averaging below can never divide
// by zero even when called with a hand-built repertoire.
func aggregateMetrics(glyphs []shapedGlyph, rep *Repertoire, family raster.FamilyMetrics, opts Options, cellHeight int) (FontMetrics, error) {
	if err := rep.Validate(); err != nil {
		return FontMetrics{}, err
	}

	byIndex := func(r rune) *shapedGlyph {
		if i, ok := rep.Index(r); ok && i < len(glyphs) {
			return &glyphs[i]
		}
		return nil
	}

	ascent := int(math.Round(float64(family.CellAscent) * opts.Size / float64(family.EmHeight)))

	bodyAscent := subsetAverage(rep.bodyAscentRef, byIndex, func(g *shapedGlyph) float64 {
		return float64(g.inkHeight())
	})
	baseline := subsetAverage(rep.baselineRef, byIndex, inkReach)
	descentReach := subsetAverage(rep.descentRef, byIndex, inkReach)

	return FontMetrics{
		PointSize:  opts.Size,
		CellHeight: cellHeight,
		Ascent:     ascent,
		BodyAscent: bodyAscent,
		Baseline:   baseline,
		Descent:    int(math.Round(descentReach - baseline)),
		Monospace:  opts.Monospace,
	}, nil
}

// inkReach is the distance from the cell top to the bottom of the
// glyph's opaque bounding box. Glyphs without ink reach zero.
func inkReach(g *shapedGlyph) float64 {
	if g.inkTop < 0 {
		return 0
	}
	return float64(g.inkTop + g.inkHeight())
}

// subsetAverage averages f over the subset's glyphs. The subset is
// non-empty by prior validation.
func subsetAverage(subset []rune, byIndex func(rune) *shapedGlyph, f func(*shapedGlyph) float64) float64 {
	sum := 0.0
	count := 0
	for _, r := range subset {
		g := byIndex(r)
		if g == nil {
			continue
		}
		sum += f(g)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
