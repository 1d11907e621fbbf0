package fontpack

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Reference subsets used for metric calibration. The body-ascent and
// baseline subsets are lowercase glyphs with neither ascender nor
// descender, so their ink height approximates the x-height and their
// ink bottom sits on the baseline. The descent subset is the lowercase
// descender glyphs.
const (
	defaultBodyAscentRef = "aemnorsuvwxz"
	defaultBaselineRef   = "aemnorsuvwxz"
	defaultDescentRef    = "gjpqy"
)

// printableASCII is the default base character set: U+0020 through U+007E.
var printableASCII = rangetable.New(spanRunes(0x20, 0x7e)...)

// spanRunes returns the inclusive range [lo, hi] as a rune slice.
func spanRunes(lo, hi rune) []rune {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Repertoire is the ordered, deduplicated set of characters to render
// for a font asset, plus the three reference subsets used for metric
// calibration. Insertion order is the rendering and atlas order.
type Repertoire struct {
	runes []rune
	index map[rune]int

	bodyAscentRef []rune
	baselineRef   []rune
	descentRef    []rune
}

// NewRepertoire builds a repertoire from the given characters, keeping
// first-occurrence order and dropping duplicates. The three reference
// strings name the subsets used to derive body ascent, baseline and
// descent; their characters must all appear in runes (see Validate).
func NewRepertoire(runes []rune, bodyAscentRef, baselineRef, descentRef string) *Repertoire {
	rep := &Repertoire{
		index:         make(map[rune]int, len(runes)),
		bodyAscentRef: []rune(bodyAscentRef),
		baselineRef:   []rune(baselineRef),
		descentRef:    []rune(descentRef),
	}
	for _, r := range runes {
		if _, ok := rep.index[r]; ok {
			continue
		}
		rep.index[r] = len(rep.runes)
		rep.runes = append(rep.runes, r)
	}
	return rep
}

// RepertoireFromTable builds a repertoire from a unicode range table,
// in ascending code point order, with extended characters appended in
// the order given. The default reference subsets are used.
func RepertoireFromTable(table *unicode.RangeTable, extended ...rune) *Repertoire {
	runes := tableRunes(table)
	runes = append(runes, extended...)
	return NewRepertoire(runes, defaultBodyAscentRef, defaultBaselineRef, defaultDescentRef)
}

// DefaultRepertoire returns the printable ASCII repertoire (U+0020 to
// U+007E) with any extended characters appended in the order given.
func DefaultRepertoire(extended ...rune) *Repertoire {
	return RepertoireFromTable(printableASCII, extended...)
}

// tableRunes expands a range table into its member runes, ascending.
func tableRunes(table *unicode.RangeTable) []rune {
	var runes []rune
	for _, r16 := range table.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			runes = append(runes, r)
		}
	}
	for _, r32 := range table.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			runes = append(runes, r)
		}
	}
	return runes
}

// Runes returns the repertoire in rendering order.
// The returned slice must not be modified.
func (rep *Repertoire) Runes() []rune {
	return rep.runes
}

// Len returns the number of characters in the repertoire.
func (rep *Repertoire) Len() int {
	return len(rep.runes)
}

// Index returns the repertoire position of r.
func (rep *Repertoire) Index(r rune) (int, bool) {
	i, ok := rep.index[r]
	return i, ok
}

// Contains reports whether r is part of the repertoire.
func (rep *Repertoire) Contains(r rune) bool {
	_, ok := rep.index[r]
	return ok
}

// Validate checks that the repertoire is non-empty and that every
// reference subset is non-empty and drawn from the repertoire.
// An empty subset would later divide by zero during metric averaging,
// so it is rejected here, before any rasterization happens.
func (rep *Repertoire) Validate() error {
	if len(rep.runes) == 0 {
		return ErrEmptyRepertoire
	}
	subsets := []struct {
		name  string
		runes []rune
	}{
		{"BodyAscentRef", rep.bodyAscentRef},
		{"BaselineRef", rep.baselineRef},
		{"DescentRef", rep.descentRef},
	}
	for _, s := range subsets {
		if len(s.runes) == 0 {
			return &ConfigError{Field: s.name, Reason: "reference subset must not be empty"}
		}
		for _, r := range s.runes {
			if !rep.Contains(r) {
				return &ConfigError{Field: s.name, Reason: "character " + string(r) + " is not in the repertoire"}
			}
		}
	}
	return nil
}
