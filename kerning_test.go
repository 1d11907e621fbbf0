package fontpack

import (
	"image"
	"sort"
	"testing"
)

// kerningTestMetrics match the wedge glyphs below: ink spans rows 3..8,
// so the baseline sits at row 9 with a body ascent of 6.
var kerningTestMetrics = FontMetrics{
	PointSize:  fakeSize,
	CellHeight: fakeCellHeight,
	Ascent:     8,
	BodyAscent: 6,
	Baseline:   9,
	Descent:    2,
}

// shapeKerningGlyphs renders A-like, V-like and H-like silhouettes plus
// a space through the real shaper.
func shapeKerningGlyphs(t *testing.T) []shapedGlyph {
	t.Helper()
	face := &fakeFace{glyphs: map[rune]fakeGlyph{
		'A': {advance: 8, pattern: wedgeDown, inkX: 1, inkY: 3},
		'V': {advance: 8, pattern: wedgeUp, inkX: 1, inkY: 3},
		'H': {advance: 8, pattern: slab, inkX: 1, inkY: 3},
		' ': {advance: 8},
	}}
	opts := DefaultOptions()
	opts.Size = fakeSize
	opts.ShapeWorkers = 1

	glyphs, err := newGlyphShaper(face, opts).shapeAll([]rune{'A', 'V', 'H', ' '})
	if err != nil {
		t.Fatal(err)
	}
	return glyphs
}

func findPair(pairs []KerningPair, left, right rune) (KerningPair, bool) {
	for _, p := range pairs {
		if p.Left == left && p.Right == right {
			return p, true
		}
	}
	return KerningPair{}, false
}

func TestKerningSampleRows_SmallFont(t *testing.T) {
	rows := kerningSampleRows(kerningTestMetrics)
	want := []float64{1, 3, 5, 7, 9, 11}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestKerningSampleRows_LargeFont(t *testing.T) {
	m := FontMetrics{Ascent: 60, Descent: 20, BodyAscent: 40, Baseline: 70}
	rows := kerningSampleRows(m)

	// One row per four pixels of vertical extent.
	if len(rows) != 20 {
		t.Fatalf("got %d rows, want 20", len(rows))
	}
	if !sort.Float64sAreSorted(rows) {
		t.Errorf("rows are not monotonically increasing: %v", rows)
	}
	lo := m.Baseline - float64(m.Ascent)
	hi := m.Baseline + float64(m.Descent)
	for i, r := range rows {
		if r < lo || r > hi {
			t.Errorf("row %d = %v outside [%v, %v]", i, r, lo, hi)
		}
	}
	// Two thirds of the rows fall in the body band.
	body := 0
	for _, r := range rows {
		if r >= m.Baseline-m.BodyAscent && r < m.Baseline {
			body++
		}
	}
	if body != 13 {
		t.Errorf("body band rows = %d, want 13", body)
	}
}

func TestInferKerning_WedgePair(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	pairs := inferKerning(glyphs, kerningTestMetrics)

	av, ok := findPair(pairs, 'A', 'V')
	if !ok {
		t.Fatal("pair (A, V) missing")
	}
	if av.Offset != -2 {
		t.Errorf("(A, V) offset = %d, want -2", av.Offset)
	}
	va, ok := findPair(pairs, 'V', 'A')
	if !ok {
		t.Fatal("pair (V, A) missing")
	}
	if va.Offset != -2 {
		t.Errorf("(V, A) offset = %d, want -2", va.Offset)
	}
}

func TestInferKerning_FlushPairsAbsent(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	pairs := inferKerning(glyphs, kerningTestMetrics)

	// H touches both edges, and A meets its own wide base: neither
	// leaves a gap to close.
	if p, ok := findPair(pairs, 'H', 'H'); ok {
		t.Errorf("pair (H, H) present with offset %d", p.Offset)
	}
	if p, ok := findPair(pairs, 'A', 'A'); ok {
		t.Errorf("pair (A, A) present with offset %d", p.Offset)
	}
}

func TestInferKerning_OnlyTightening(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	for _, p := range inferKerning(glyphs, kerningTestMetrics) {
		if p.Offset >= 0 {
			t.Errorf("pair (%c, %c) offset = %d, want negative", p.Left, p.Right, p.Offset)
		}
	}
}

func TestInferKerning_WhitespaceExempt(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	for _, p := range inferKerning(glyphs, kerningTestMetrics) {
		if p.Left == ' ' || p.Right == ' ' {
			t.Errorf("space participates in pair (%q, %q)", p.Left, p.Right)
		}
	}
}

func TestInferKerning_Monospace(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	m := kerningTestMetrics
	m.Monospace = true
	if pairs := inferKerning(glyphs, m); pairs != nil {
		t.Errorf("monospace font produced %d kerning pairs", len(pairs))
	}
}

func TestDepthProfile_EmptyBandReportsMidpoint(t *testing.T) {
	glyphs := shapeKerningGlyphs(t)
	rows := kerningSampleRows(kerningTestMetrics)

	var a *shapedGlyph
	for i := range glyphs {
		if glyphs[i].char == 'A' {
			a = &glyphs[i]
		}
	}
	p := newDepthProfile(a, rows)
	mid := (a.mask.Bounds().Dx() + 1) / 2
	// The first band lies above the ink.
	if p.left[0] != mid || p.right[0] != mid {
		t.Errorf("empty band depths = (%d, %d), want (%d, %d)", p.left[0], p.right[0], mid, mid)
	}
}

func TestDepthProfile_ClampsToMidpoint(t *testing.T) {
	// A single ink column on the far left leaves the full remaining
	// width on the right; the report is clamped to the midpoint.
	mask := image.NewAlpha(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		mask.Pix[y*mask.Stride] = 0xff
	}
	g := shapedGlyph{char: 'l', mask: mask, inkTop: 0, inkBottom: 4}
	p := newDepthProfile(&g, []float64{4})
	if p.left[0] != 0 {
		t.Errorf("left depth = %d, want 0", p.left[0])
	}
	if p.right[0] != 3 {
		t.Errorf("right depth = %d, want midpoint 3", p.right[0])
	}
}

func TestDepthProfile_ThresholdIgnoresFaintFringe(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 6, 2))
	for y := 0; y < 2; y++ {
		mask.Pix[y*mask.Stride+0] = kernThreshold // at, not above
		mask.Pix[y*mask.Stride+2] = 0xff
	}
	g := shapedGlyph{char: 'o', mask: mask, inkTop: 0, inkBottom: 2}
	p := newDepthProfile(&g, []float64{2})
	if p.left[0] != 2 {
		t.Errorf("left depth = %d, want 2 (fringe at threshold ignored)", p.left[0])
	}
}
