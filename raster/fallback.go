package raster

import "golang.org/x/image/font/gofont/gomono"

// FallbackFamilyName is the family substituted when the requested face
// cannot be instantiated.
const FallbackFamilyName = "Go Mono"

// Fallback opens the fallback monospace family (Go Mono) at the given
// size and style. Importers substitute it when Open fails with a
// *FaceError and surface a warning diagnostic naming the failure.
func Fallback(size float64, style Style, opts ...Option) (Face, error) {
	return Open(gomono.TTF, size, style, opts...)
}
