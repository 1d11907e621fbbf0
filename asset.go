package fontpack

import "fmt"

// GlyphRecord is the placement metadata for one character, used by
// runtime text layout. OffsetX encodes the left-side-bearing trim;
// OffsetY is always zero because glyphs occupy the full line-height
// cell. Advance == Width - OffsetX.
type GlyphRecord struct {
	Char    rune
	Width   int
	Height  int
	OffsetX int
	OffsetY int
	Advance int
}

// FontAsset is the immutable result of one import: the coverage-mask
// atlas, the parallel glyph record and atlas rect tables in repertoire
// order, the aggregate font metrics and the sparse kerning table.
//
// A FontAsset is built once per (font source, style parameters)
// combination and replaced wholesale on re-import; it is never mutated
// in place. The slices returned by its accessors alias internal state
// and must not be modified.
type FontAsset struct {
	atlas   *Pixmap
	glyphs  []GlyphRecord
	rects   []AtlasRect
	metrics FontMetrics
	kerning []KerningPair

	index map[rune]int
	kern  map[[2]rune]int
}

// newFontAsset assembles the asset and checks the parallel-array
// post-condition.
func newFontAsset(atlas *Pixmap, glyphs []GlyphRecord, rects []AtlasRect, metrics FontMetrics, kerning []KerningPair) (*FontAsset, error) {
	if len(glyphs) != len(rects) {
		return nil, fmt.Errorf("fontpack: glyph records (%d) and atlas rects (%d) are not parallel", len(glyphs), len(rects))
	}
	a := &FontAsset{
		atlas:   atlas,
		glyphs:  glyphs,
		rects:   rects,
		metrics: metrics,
		kerning: kerning,
		index:   make(map[rune]int, len(glyphs)),
		kern:    make(map[[2]rune]int, len(kerning)),
	}
	for i, g := range glyphs {
		a.index[g.Char] = i
	}
	for i, k := range kerning {
		a.kern[[2]rune{k.Left, k.Right}] = i
	}
	return a, nil
}

// Atlas returns the packed coverage-mask texture. Color channels are
// uniformly white; alpha carries glyph coverage.
func (a *FontAsset) Atlas() *Pixmap { return a.atlas }

// Glyphs returns the glyph records in repertoire order.
func (a *FontAsset) Glyphs() []GlyphRecord { return a.glyphs }

// Rects returns the atlas placements, parallel to Glyphs.
func (a *FontAsset) Rects() []AtlasRect { return a.rects }

// Metrics returns the aggregate font metrics.
func (a *FontAsset) Metrics() FontMetrics { return a.metrics }

// KerningPairs returns the sparse kerning table.
func (a *FontAsset) KerningPairs() []KerningPair { return a.kerning }

// Len returns the number of glyphs in the asset.
func (a *FontAsset) Len() int { return len(a.glyphs) }

// Glyph looks up the record and atlas placement for a character.
func (a *FontAsset) Glyph(r rune) (GlyphRecord, AtlasRect, bool) {
	i, ok := a.index[r]
	if !ok {
		return GlyphRecord{}, AtlasRect{}, false
	}
	return a.glyphs[i], a.rects[i], true
}

// Kerning returns the horizontal adjustment for the ordered pair
// (left, right), or zero when the pair is not in the table.
func (a *FontAsset) Kerning(left, right rune) int {
	if i, ok := a.kern[[2]rune{left, right}]; ok {
		return a.kerning[i].Offset
	}
	return 0
}
