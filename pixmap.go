package fontpack

import (
	"image"
	"image/png"
	"io"
)

// Pixmap is the RGBA8 pixel buffer backing a glyph atlas.
// Alpha carries per-pixel glyph coverage; the color channels are pinned
// to white when the atlas is finalized, so the texture is consumed as a
// coverage mask tinted at render time.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// The returned slice aliases the pixmap's storage.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// AlphaAt returns the coverage value of a single pixel.
// Out-of-bounds coordinates report zero coverage.
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// DrawMask composites an alpha mask onto the pixmap at (x, y) using
// solid, non-blending compositing: destination alpha is overwritten.
// Pixels falling outside the pixmap are skipped.
func (p *Pixmap) DrawMask(m *image.Alpha, x, y int) {
	b := m.Bounds()
	for sy := 0; sy < b.Dy(); sy++ {
		dy := y + sy
		if dy < 0 || dy >= p.height {
			continue
		}
		row := m.Pix[sy*m.Stride : sy*m.Stride+b.Dx()]
		for sx, a := range row {
			dx := x + sx
			if dx < 0 || dx >= p.width {
				continue
			}
			p.data[(dy*p.width+dx)*4+3] = a
		}
	}
}

// WhitenRGB overwrites every pixel's color channels with full white
// while preserving the alpha channel.
func (p *Pixmap) WhitenRGB() {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = 0xff
		p.data[i+1] = 0xff
		p.data[i+2] = 0xff
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap as PNG. Useful for asset pipelines and
// golden tests; the wire format of the final asset is the consumer's
// concern, not fontpack's.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}
