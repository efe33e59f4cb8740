// Package text loads fonts and rasterizes glyph runs for kanjiwall.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF and TTC files)
//   - Face: lightweight font instance at a specific size
//   - Draw / Measure: glyph rasterization onto any draw.Image, and advance
//     measurement for layout decisions
//
// Measurement goes through go-text/typesetting's HarfBuzz shaper when the
// font parses on that side, so advances include kerning and mark placement;
// otherwise nominal glyph advances are summed. Rasterization always uses
// golang.org/x/image/font.
//
// # Example usage
//
//	// Load font (do once, share across the application)
//	source, err := text.NewFontSourceFromFile("NotoSansCJK-Regular.ttc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create a face at a specific size (lightweight)
//	face, err := source.Face(24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Draw with the baseline at (100, 100)
//	text.Draw(dst, "勉強", face, 100, 100, color.White)
package text
