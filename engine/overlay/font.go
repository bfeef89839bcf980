package overlay

// Glyph is a 15-bit pixel mask over a 3x5 cell grid. Bit index for the cell at
// column ix, row iy (rows counted from the top) is (4-iy)*3+ix, so the most
// significant used bit is the top-left cell.
type Glyph uint16

// Digits maps a decimal digit to its glyph mask.
var Digits = [10]Glyph{
	31599, // 0
	9879,  // 1
	31183, // 2
	31207, // 3
	23524, // 4
	29671, // 5
	29679, // 6
	30994, // 7
	31727, // 8
	31719, // 9
}

// Letter and symbol glyphs used by the HUD labels.
const (
	GlyphF       Glyph = 29385
	GlyphP       Glyph = 31689
	GlyphS       Glyph = 29671
	GlyphM       Glyph = 24429
	GlyphA       Glyph = 11245
	GlyphX       Glyph = 23213
	GlyphI       Glyph = 29847
	GlyphN       Glyph = 23533
	GlyphJ       Glyph = 31023
	GlyphT       Glyph = 29842
	GlyphL       Glyph = 4687
	GlyphPercent Glyph = 22669
)

// Set reports whether the cell at (ix, iy) is lit, with iy counted from the
// top row. Out-of-grid coordinates are unset.
func (g Glyph) Set(ix, iy int) bool {
	if ix < 0 || ix >= 3 || iy < 0 || iy >= 5 {
		return false
	}
	return g&(1<<uint((4-iy)*3+ix)) != 0
}
