package fontpack

import "math"

// AtlasRect is the integer placement of one glyph's bitmap within the
// shared atlas texture. Atlas rects and glyph records are parallel
// arrays in repertoire order.
type AtlasRect struct {
	X, Y, W, H int
}

// Atlas padding scales with the cell height but stays within a sane
// pixel range.
const (
	minRowPad   = 3
	maxRowPad   = 10
	minGlyphPad = 2
	maxGlyphPad = 10
)

// packAtlas lays out all glyph bitmaps into one coverage-mask pixmap
// using single-pass shelf packing in repertoire order, then pins the
// color channels to white.
//
// The atlas width is a fixed-ratio estimate (sqrt of the glyph count in
// cells, scaled by the average advance with 20% headroom). The estimate
// is a heuristic, not a bound: placement is computed before any pixels
// are allocated, so a short height estimate grows to the actual layout
// extent instead of clipping. A glyph too wide for the estimated width
// is a PackingOverflowError.
func packAtlas(glyphs []shapedGlyph, cellHeight int) (*Pixmap, []AtlasRect, error) {
	if len(glyphs) == 0 {
		return nil, nil, ErrEmptyRepertoire
	}

	cells := int(math.Ceil(math.Sqrt(float64(len(glyphs)))))
	totalAdvance := 0
	for i := range glyphs {
		totalAdvance += glyphs[i].rec.Advance
	}
	avgAdvance := float64(totalAdvance) / float64(len(glyphs))
	atlasW := int(float64(cells) * avgAdvance * 1.2)
	estimatedH := int(float64(cells) * float64(cellHeight) * 1.2)

	rowPad := clampInt(int(math.Ceil(float64(cellHeight)*0.1875)), minRowPad, maxRowPad)
	glyphPad := clampInt(int(math.Ceil(float64(cellHeight)*0.125)), minGlyphPad, maxGlyphPad)

	// Layout pass: pure placement, no pixels yet.
	rects := make([]AtlasRect, len(glyphs))
	x, y := 1, 1
	maxY := 0
	for i := range glyphs {
		w := glyphs[i].mask.Bounds().Dx()
		if x+w+2 > atlasW {
			// Wrap to the next shelf.
			x = 1
			y += cellHeight + rowPad
			if x+w+2 > atlasW {
				return nil, nil, &PackingOverflowError{
					Char:       glyphs[i].char,
					GlyphWidth: w,
					AtlasWidth: atlasW,
				}
			}
		}
		rects[i] = AtlasRect{X: x, Y: y, W: w, H: cellHeight + 1}
		if bottom := y + cellHeight + 1; bottom > maxY {
			maxY = bottom
		}
		x += w + glyphPad
	}

	atlasH := estimatedH
	if maxY+1 > atlasH {
		Logger().Warn("fontpack: atlas height estimate too small, growing",
			"estimated", estimatedH, "actual", maxY+1)
		atlasH = maxY + 1
	}

	atlas := NewPixmap(atlasW, atlasH)
	for i := range glyphs {
		// Solid compositing; shelves never overlap by construction, so
		// later glyphs never blend with earlier ones.
		atlas.DrawMask(glyphs[i].mask, rects[i].X, rects[i].Y)
	}
	atlas.WhitenRGB()

	Logger().Debug("fontpack: atlas packed",
		"glyphs", len(glyphs), "width", atlasW, "height", atlasH,
		"rowPad", rowPad, "glyphPad", glyphPad)
	return atlas, rects, nil
}

// clampInt limits v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
