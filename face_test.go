package fontpack

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/fontpack/raster"
)

// fakeGlyph describes one glyph of the in-memory test face.
type fakeGlyph struct {
	// advance is the natural advance width in pixels.
	advance int

	// pattern is the ink as rows of '#' (opaque) and '.' (transparent).
	pattern []string

	// inkX, inkY place the pattern inside the natural-mode cell.
	inkX, inkY int

	// tightTrim removes columns from the pattern's right edge in tight
	// mode, simulating narrower typographic ink.
	tightTrim int
}

// fakeFace is a deterministic in-memory raster.Face for pipeline tests.
// Family metrics: em 1000, line spacing 1200, ascent 800, descent 200.
// At size 10 the pipeline derives cellHeight 12 and working height 13.
type fakeFace struct {
	glyphs     map[rune]fakeGlyph
	rasterized atomic.Int64
}

const (
	fakeSize       = 10.0
	fakeCellHeight = 12 // ceil(1200 * 10 / 1000)
	fakeWorkH      = fakeCellHeight + 1
	fakeDefaultAdv = 8
)

func (f *fakeFace) Family() raster.FamilyMetrics {
	return raster.FamilyMetrics{LineSpacing: 1200, EmHeight: 1000, CellAscent: 800, CellDescent: 200}
}

func (f *fakeFace) Size() float64       { return fakeSize }
func (f *fakeFace) Style() raster.Style { return raster.StyleRegular }

func (f *fakeFace) Measure(text string) (int, int) {
	g := f.glyphs[firstRune(text)]
	adv := g.advance
	if adv == 0 {
		adv = fakeDefaultAdv
	}
	return adv + 1, fakeWorkH
}

func (f *fakeFace) Rasterize(text string, mode raster.SpacingMode, w, h int, antialias bool) (*image.Alpha, error) {
	f.rasterized.Add(1)
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	g, ok := f.glyphs[firstRune(text)]
	if !ok || len(g.pattern) == 0 {
		return m, nil
	}

	x0 := g.inkX
	patW := len(g.pattern[0])
	if mode == raster.SpacingTight {
		x0 = 0
		patW -= g.tightTrim
	}
	for dy, row := range g.pattern {
		y := g.inkY + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := 0; dx < patW && dx < len(row); dx++ {
			if row[dx] != '#' {
				continue
			}
			if x := x0 + dx; x >= 0 && x < w {
				m.Pix[y*m.Stride+x] = 0xff
			}
		}
	}
	return m, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// wedgeDown is an A-like silhouette: narrow at the top, wide at the
// bottom.
var wedgeDown = []string{
	"..##..",
	"..##..",
	".#..#.",
	".####.",
	"#....#",
	"#....#",
}

// wedgeUp is a V-like silhouette: wide at the top, narrow at the
// bottom.
var wedgeUp = []string{
	"#....#",
	"#....#",
	".#..#.",
	".#..#.",
	"..##..",
	"..##..",
}

// slab is an H-like silhouette touching both bitmap edges on every row.
var slab = []string{
	"#....#",
	"######",
	"#....#",
}
