package fontpack

import "math"

// KerningPair is a signed horizontal adjustment applied when Left and
// Right appear adjacent in rendered text. Negative offsets pull the
// glyphs closer. Only pairs with a non-zero offset are retained.
type KerningPair struct {
	Left   rune
	Right  rune
	Offset int
}

// kernThreshold is the coverage a pixel must exceed to block kerning.
// Kept low so faint antialiasing fringes don't hold pairs apart.
const kernThreshold uint8 = 32

// inferKerning derives a sparse kerning table purely from rendered
// pixel coverage: each glyph's silhouette is sampled at several
// vertical heights, and every ordered pair is pulled together by the
// smallest combined whitespace gap found across those heights. No
// font-embedded kerning data is consulted.
//
// Monospace fonts get no table; uniform advances make kerning
// meaningless.
func inferKerning(glyphs []shapedGlyph, m FontMetrics) []KerningPair {
	if m.Monospace {
		return nil
	}

	rows := kerningSampleRows(m)
	Logger().Debug("fontpack: kerning sample rows", "count", len(rows))

	profiles := make([]*depthProfile, len(glyphs))
	for i := range glyphs {
		if kerningExempt(glyphs[i].char) {
			continue
		}
		profiles[i] = newDepthProfile(&glyphs[i], rows)
	}

	var pairs []KerningPair
	for li := range glyphs {
		lp := profiles[li]
		if lp == nil {
			continue
		}
		for ri := range glyphs {
			rp := profiles[ri]
			if rp == nil {
				continue
			}
			minSum := math.MaxInt
			for b := range rows {
				if sum := lp.right[b] + rp.left[b]; sum < minSum {
					minSum = sum
				}
			}
			if minSum != 0 {
				pairs = append(pairs, KerningPair{
					Left:   glyphs[li].char,
					Right:  glyphs[ri].char,
					Offset: -minSum,
				})
			}
		}
	}
	return pairs
}

// kerningExempt reports whether a character contributes no kerning.
// Whitespace has no silhouette to measure against.
func kerningExempt(r rune) bool {
	return r == ' ' || r == '\t'
}

// kerningSampleRows derives the vertical sample heights, in cell
// coordinates measured from the cell top, from the aggregate metrics.
//
// Small fonts get six fixed rows spanning ascent to descent. Larger
// fonts get one row per four pixels of (ascent+descent), two thirds of
// them across the body-ascent band and the rest split between the
// ascent band above it and the descent band below the baseline, each
// band sampled at evenly spaced interior points.
func kerningSampleRows(m FontMetrics) []float64 {
	ascent := float64(m.Ascent)
	descent := float64(m.Descent)
	body := m.BodyAscent
	baseline := m.Baseline

	n := (m.Ascent + m.Descent) / 4
	if n <= 6 {
		return []float64{
			baseline - ascent,
			baseline - body,
			baseline - body*2/3,
			baseline - body/3,
			baseline,
			baseline + descent,
		}
	}

	bodyCount := n * 2 / 3
	rest := n - bodyCount
	ascCount := rest / 2
	descCount := rest - ascCount

	rows := make([]float64, 0, n)
	rows = append(rows, bandRows(baseline-ascent, baseline-body, ascCount)...)
	rows = append(rows, bandRows(baseline-body, baseline, bodyCount)...)
	rows = append(rows, bandRows(baseline, baseline+descent, descCount)...)
	return rows
}

// bandRows returns count rows linearly interpolated across [from, to),
// placed at band midpoints so adjacent bands never duplicate a row.
func bandRows(from, to float64, count int) []float64 {
	rows := make([]float64, count)
	for j := 0; j < count; j++ {
		rows[j] = from + (to-from)*(float64(j)+0.5)/float64(count)
	}
	return rows
}

// depthProfile holds, per sample row band, how many transparent columns
// separate each bitmap edge from the glyph's silhouette.
type depthProfile struct {
	left  []int
	right []int
}

// newDepthProfile measures the glyph's silhouette. Row bands partition
// the bitmap height monotonically from the previous sample's cutoff to
// the current one, with the last band extending to the bitmap bottom.
// Depths are clamped to the horizontal midpoint; an empty band reports
// the clamp value, never blocking a pair by itself.
func newDepthProfile(g *shapedGlyph, rows []float64) *depthProfile {
	bounds := g.mask.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mid := (w + 1) / 2

	p := &depthProfile{
		left:  make([]int, len(rows)),
		right: make([]int, len(rows)),
	}

	prev := 0
	for b, row := range rows {
		// Align the sample row with this glyph's own vertical offset so
		// rows hit the same heights across differently trimmed glyphs.
		cut := int(math.Round(row)) - g.rec.OffsetY
		if cut < prev {
			cut = prev
		}
		if cut > h {
			cut = h
		}
		end := cut
		if b == len(rows)-1 {
			end = h
		}

		left, right := mid, mid
		for y := prev; y < end; y++ {
			pix := g.mask.Pix[y*g.mask.Stride : y*g.mask.Stride+w]
			for x := 0; x < w && x < left; x++ {
				if pix[x] > kernThreshold {
					left = x
					break
				}
			}
			for x := w - 1; x >= 0 && w-1-x < right; x-- {
				if pix[x] > kernThreshold {
					right = w - 1 - x
					break
				}
			}
		}
		if left > mid {
			left = mid
		}
		if right > mid {
			right = mid
		}
		p.left[b] = left
		p.right[b] = right
		prev = end
	}
	return p
}
