package raster

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Description identifies a font binary: its family name and the aspect
// it was designed with. fontpack uses it to name fonts in diagnostics
// and to warn when a requested style is not what the binary carries.
type Description struct {
	Family string
	Bold   bool
	Italic bool
}

// Matches reports whether the described aspect carries the requested
// style. A single font binary has one design; asking for Bold from a
// regular binary is answered with the regular design.
func (d Description) Matches(style Style) bool {
	return d.Bold == style.Bold() && d.Italic == style.Italic()
}

// Describe parses font data with go-text/typesetting and reports the
// font's family name and aspect.
func Describe(data []byte) (Description, error) {
	ft, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrInvalidFontData, err)
	}
	desc := ft.Describe()
	return Description{
		Family: desc.Family,
		Bold:   desc.Aspect.Weight >= font.WeightBold,
		Italic: desc.Aspect.Style == font.StyleItalic,
	}, nil
}
