// Package fontpack bakes a rasterizable font into a self-contained
// bitmap font asset: one packed coverage-mask atlas, per-glyph placement
// records, aggregate font metrics, and a kerning table inferred purely
// from rendered pixel coverage.
//
// The pipeline is a pure function of (font bytes, style parameters,
// repertoire) to a FontAsset:
//
//	asset, diags, err := fontpack.Import(ttfData, fontpack.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Println(d.Message)
//	}
//	png.Encode(out, asset.Atlas().ToImage())
//
// Rasterization itself is delegated to the raster subpackage, which
// abstracts the rendering backend behind the raster.Face interface.
// The default backend uses golang.org/x/image/font/opentype; custom
// backends can be registered with raster.RegisterBackend.
//
// Kerning is not read from the font file. Instead, every glyph's
// silhouette is sampled at several vertical heights and each ordered
// pair is pulled together by the smallest combined whitespace gap
// across those heights. This works for any font, including fonts that
// ship without kerning tables.
//
// fontpack produces no log output by default. Call SetLogger to enable
// diagnostics during import.
package fontpack
