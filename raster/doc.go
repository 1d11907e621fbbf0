// Package raster is the rasterization boundary of fontpack.
//
// It abstracts "given a font face, size, style and a single character,
// produce an 8-bit coverage bitmap" behind the Face interface, with
// pluggable backends. The default backend ("ximage") renders through
// golang.org/x/image/font/opentype. Alternative backends (for example a
// HarfBuzz- or platform-API-backed rasterizer) can be registered with
// RegisterBackend.
//
// A Face exposes two spacing modes of the same rasterization
// capability: SpacingNatural renders the glyph at its pen position
// inside an advance-wide cell, SpacingTight renders it flush against
// the left edge with typographic (unhinted) metrics. fontpack derives
// per-glyph offsets and advances from the difference between the two.
//
// When the requested face cannot be instantiated, callers substitute
// the Fallback face: the Go Mono family at the same size and style.
package raster
