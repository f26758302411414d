package text

// Glyph holds the metrics of one rune in pixels plus its atlas rectangle.
type Glyph struct {
	Rune     rune
	Advance  float32
	BearingX float32
	// Offset is the distance from the top of the line box to the top of the glyph.
	Offset float32
	W, H   float32
	// UV is the atlas sub-rectangle as normalized (u, v, width, height).
	UV [4]float32
}

// Table is the glyph lookup consumed by text widgets.
type Table interface {
	Lookup(r rune) (Glyph, bool)
	LineHeight() float32
}

// StaticTable is an in-memory Table.
type StaticTable struct {
	glyphs     map[rune]Glyph
	lineHeight float32
}

func NewTable(lineHeight float32, glyphs ...Glyph) *StaticTable {
	t := &StaticTable{glyphs: make(map[rune]Glyph, len(glyphs)), lineHeight: lineHeight}
	for _, g := range glyphs {
		t.glyphs[g.Rune] = g
	}
	return t
}

func (t *StaticTable) Lookup(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

func (t *StaticTable) LineHeight() float32 { return t.lineHeight }

func (t *StaticTable) Len() int { return len(t.glyphs) }

// Resolve returns the glyph for r. Runes missing from the table resolve to
// an invisible glyph that advances like a space.
func Resolve(t Table, r rune) Glyph {
	if g, ok := t.Lookup(r); ok {
		return g
	}
	sp, _ := t.Lookup(' ')
	return Glyph{Rune: r, Advance: sp.Advance}
}

// Measure returns the advance width of a single line of s.
func Measure(t Table, s string) float32 {
	var w float32
	for _, r := range s {
		w += Resolve(t, r).Advance
	}
	return w
}
