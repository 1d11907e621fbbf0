package fontpack

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/fontpack/raster"
)

// trimThreshold is the coverage a pixel must exceed to count as opaque
// for bounding-box trimming. Zero keeps every antialiased fringe inside
// the glyph bitmap.
const trimThreshold uint8 = 0

// shapedGlyph carries one glyph between pipeline stages: the cropped
// natural-spacing coverage bitmap plus its placement record. The bitmap
// is transient; it is discarded once composited into the atlas and
// measured for kerning.
type shapedGlyph struct {
	char rune
	mask *image.Alpha
	rec  GlyphRecord

	// Vertical ink extent within the cell, top inclusive and bottom
	// exclusive. inkTop is -1 when the glyph has no opaque pixels.
	inkTop    int
	inkBottom int
}

// inkHeight returns the height of the glyph's opaque bounding box.
func (g *shapedGlyph) inkHeight() int {
	if g.inkTop < 0 {
		return 0
	}
	return g.inkBottom - g.inkTop
}

// glyphShaper rasterizes repertoire characters twice (natural and tight
// spacing), trims to opaque bounds and derives per-glyph size, offset
// and advance.
type glyphShaper struct {
	face       raster.Face
	opts       Options
	cellHeight int
}

func newGlyphShaper(face raster.Face, opts Options) *glyphShaper {
	fam := face.Family()
	cellHeight := int(math.Ceil(float64(fam.LineSpacing) * opts.Size / float64(fam.EmHeight)))
	if cellHeight < 1 {
		cellHeight = 1
	}
	return &glyphShaper{face: face, opts: opts, cellHeight: cellHeight}
}

// shapeAll shapes every rune, optionally across a bounded worker pool.
// Results land at their repertoire index, so downstream packing order
// is deterministic regardless of worker count.
func (s *glyphShaper) shapeAll(runes []rune) ([]shapedGlyph, error) {
	out := make([]shapedGlyph, len(runes))

	workers := s.opts.ShapeWorkers
	if workers > len(runes) {
		workers = len(runes)
	}
	if workers <= 1 {
		for i, r := range runes {
			g, err := s.shape(r)
			if err != nil {
				return nil, err
			}
			out[i] = g
		}
	} else {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		indices := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indices {
					g, err := s.shape(runes[i])
					if err != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mu.Unlock()
						continue
					}
					out[i] = g
				}
			}()
		}
		for i := range runes {
			indices <- i
		}
		close(indices)
		wg.Wait()
		if firstErr != nil {
			return nil, firstErr
		}
	}

	if s.opts.Monospace {
		applyMonospace(out)
	}
	return out, nil
}

// shape produces the glyph record and coverage bitmap for one character.
func (s *glyphShaper) shape(r rune) (shapedGlyph, error) {
	str := string(r)

	natW, _ := s.face.Measure(str)
	if natW < 1 {
		natW = 1
	}
	// TrueType glyphs render on whole-line blocks, so the working
	// bitmaps always span the full cell height.
	cellH := s.cellHeight + 1

	natural, err := s.face.Rasterize(str, raster.SpacingNatural, natW, cellH, s.opts.Antialias)
	if err != nil {
		return shapedGlyph{}, fmt.Errorf("fontpack: rasterize %q: %w", r, err)
	}
	tight, err := s.face.Rasterize(str, raster.SpacingTight, natW, cellH, s.opts.Antialias)
	if err != nil {
		return shapedGlyph{}, fmt.Errorf("fontpack: rasterize %q: %w", r, err)
	}

	if r == ' ' || r == '\t' {
		return shapeWhitespace(r, natural, natW, cellH), nil
	}

	bounds, hasInk := opaqueBounds(natural)
	var mask *image.Alpha
	if hasInk {
		mask = cropColumns(natural, bounds.Min.X, bounds.Max.X)
	} else {
		// A zero-width rasterization still yields a bitmap of width 1
		// so the atlas never sees a degenerate rectangle.
		mask = cropColumns(natural, 0, 1)
	}

	typoW := 1
	if tb, ok := opaqueBounds(tight); ok {
		typoW = tb.Dx()
	}

	g := shapedGlyph{
		char:      r,
		mask:      mask,
		inkTop:    -1,
		inkBottom: -1,
	}
	if hasInk {
		g.inkTop = bounds.Min.Y
		g.inkBottom = bounds.Max.Y
	}
	g.rec = GlyphRecord{
		Char:    r,
		Width:   mask.Bounds().Dx(),
		Height:  mask.Bounds().Dy(),
		OffsetX: mask.Bounds().Dx() - typoW,
		OffsetY: 0,
	}
	g.rec.Advance = g.rec.Width - g.rec.OffsetX
	return g, nil
}

// shapeWhitespace special-cases space and tab, which have no opaque
// pixels to trim. The space character's size and offset are halved,
// giving a narrower, better-proportioned advance than the raw
// measurement would.
func shapeWhitespace(r rune, natural *image.Alpha, natW, cellH int) shapedGlyph {
	width := natW
	offsetX := 0
	if r == ' ' {
		width = natW / 2
		if width < 1 {
			width = 1
		}
		// The tight bitmap equals the natural one for space, so the
		// raw offset is zero; halving keeps it zero.
	}
	mask := cropColumns(natural, 0, width)
	rec := GlyphRecord{
		Char:    r,
		Width:   width,
		Height:  cellH,
		OffsetX: offsetX,
	}
	rec.Advance = rec.Width - rec.OffsetX
	return shapedGlyph{char: r, mask: mask, rec: rec, inkTop: -1, inkBottom: -1}
}

// applyMonospace forces every advance to the maximum natural glyph
// width, keeping advance == width - offsetX intact per glyph.
func applyMonospace(glyphs []shapedGlyph) {
	maxW := 0
	for i := range glyphs {
		if glyphs[i].rec.Width > maxW {
			maxW = glyphs[i].rec.Width
		}
	}
	for i := range glyphs {
		glyphs[i].rec.OffsetX = glyphs[i].rec.Width - maxW
		glyphs[i].rec.Advance = maxW
	}
}

// opaqueBounds returns the smallest rectangle (half-open) containing
// all pixels whose coverage exceeds trimThreshold, and whether any
// such pixel exists.
func opaqueBounds(m *image.Alpha) (image.Rectangle, bool) {
	b := m.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false
	for y := 0; y < b.Dy(); y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+b.Dx()]
		for x, a := range row {
			if a <= trimThreshold {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x+1 > maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			if y+1 > maxY {
				maxY = y + 1
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

// cropColumns returns the column range [x0, x1) of m at full height.
func cropColumns(m *image.Alpha, x0, x1 int) *image.Alpha {
	b := m.Bounds()
	if x0 < 0 {
		x0 = 0
	}
	if x1 > b.Dx() {
		x1 = b.Dx()
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}
	out := image.NewAlpha(image.Rect(0, 0, x1-x0, b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+(x1-x0)], m.Pix[y*m.Stride+x0:y*m.Stride+x1])
	}
	return out
}
