package raster

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend renders through golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Open implements the Backend interface.
func (ximageBackend) Open(data []byte, size float64, style Style, cfg Config) (Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontData, err)
	}

	hinted, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     cfg.DPI,
		Hinting: mapHinting(cfg.Hinting),
	})
	if err != nil {
		return nil, &FaceError{Backend: "ximage", Err: err}
	}

	// Tight-spacing rendering uses the unhinted face so its metrics are
	// the typographic ones, not the grid-fit ones.
	unhinted, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     cfg.DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, &FaceError{Backend: "ximage", Err: err}
	}

	family, err := familyMetrics(fnt)
	if err != nil {
		return nil, &FaceError{Backend: "ximage", Err: err}
	}

	return &ximageFace{
		fnt:      fnt,
		hinted:   hinted,
		unhinted: unhinted,
		family:   family,
		size:     size,
		style:    style,
	}, nil
}

// familyMetrics queries the font's design-unit metrics by asking for
// metrics at ppem == unitsPerEm, where pixel units and design units
// coincide.
func familyMetrics(fnt *sfnt.Font) (FamilyMetrics, error) {
	var buf sfnt.Buffer
	upem := int(fnt.UnitsPerEm())
	m, err := fnt.Metrics(&buf, fixed.I(upem), font.HintingNone)
	if err != nil {
		return FamilyMetrics{}, err
	}
	return FamilyMetrics{
		LineSpacing: m.Height.Round(),
		EmHeight:    upem,
		CellAscent:  m.Ascent.Round(),
		CellDescent: m.Descent.Round(),
	}, nil
}

// mapHinting converts the package-level hinting mode to x/image's.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// ximageFace is the x/image-backed Face implementation.
type ximageFace struct {
	// mu guards hinted and unhinted: font.Face drawing and measuring
	// are not safe for concurrent use.
	mu sync.Mutex

	fnt      *sfnt.Font
	hinted   font.Face
	unhinted font.Face
	family   FamilyMetrics
	size     float64
	style    Style
}

// Measure implements Face.Measure.
func (f *ximageFace) Measure(text string) (width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	advance := font.MeasureString(f.hinted, text)
	m := f.hinted.Metrics()

	width = advance.Ceil() + 1
	if width < 1 {
		width = 1
	}
	height = (m.Ascent + m.Descent).Ceil() + 1
	if height < 1 {
		height = 1
	}
	return width, height
}

// Rasterize implements Face.Rasterize.
func (f *ximageFace) Rasterize(text string, mode SpacingMode, width, height int, antialias bool) (*image.Alpha, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.hinted
	if mode == SpacingTight {
		face = f.unhinted
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
	}

	dotX := fixed.I(0)
	if mode == SpacingTight {
		// Flush the ink against the left bitmap edge.
		bounds, _ := font.BoundString(face, text)
		dotX = -bounds.Min.X
	}
	drawer.Dot = fixed.Point26_6{X: dotX, Y: face.Metrics().Ascent}
	drawer.DrawString(text)

	if !antialias {
		binarize(mask)
	}
	return mask, nil
}

// Family implements Face.Family.
func (f *ximageFace) Family() FamilyMetrics { return f.family }

// Size implements Face.Size.
func (f *ximageFace) Size() float64 { return f.size }

// Style implements Face.Style.
func (f *ximageFace) Style() Style { return f.style }

// binarize snaps antialiased coverage to full-on or full-off.
func binarize(m *image.Alpha) {
	for i, a := range m.Pix {
		if a >= 0x80 {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0
		}
	}
}
