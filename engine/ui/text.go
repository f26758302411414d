package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/colors"
	"github.com/hubastard/foam/engine/text"
)

// Align is a set of horizontal and vertical alignment flags.
type Align uint16

const (
	AlignLeft    Align = 0x0001
	AlignRight   Align = 0x0002
	AlignHCenter Align = 0x0004

	AlignTop     Align = 0x0020
	AlignBottom  Align = 0x0040
	AlignVCenter Align = 0x0080
)

// textLayout is everything that affects the glyph quads of a Text.
type textLayout struct {
	text      string
	size      mgl32.Vec2
	position  mgl32.Vec2
	color     colors.Color
	alignment Align
}

// TextState is a single line of glyphs aligned inside its box.
type TextState struct {
	level     int
	Size      mgl32.Vec2
	Position  mgl32.Vec2
	Color     colors.Color
	Text      string
	Alignment Align
	commands  []DrawCommand
	// laidOut is the layout commands were produced for; Draw reuses them
	// while it matches.
	laidOut *textLayout
}

func newTextState(level int) TextState {
	return TextState{level: level, Color: colors.Black, Alignment: AlignLeft | AlignTop}
}

func (s TextState) Tag() Tag                    { return Tag{Kind: KindText, Level: s.level} }
func (s TextState) DrawCommands() []DrawCommand { return s.commands }

func (s TextState) with(p Prop) TextState {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	case FieldColor:
		s.Color = p.color()
	case FieldText:
		s.Text = p.str()
	case FieldAlignment:
		s.Alignment = p.align()
	}
	return s
}

func (s TextState) layout() textLayout {
	return textLayout{text: s.Text, size: s.Size, position: s.Position, color: s.Color, alignment: s.Alignment}
}

func (s TextState) cleared() TextState {
	s.commands, s.laidOut = nil, nil
	return s
}

// origin returns the top-left of the line box after alignment.
func (s TextState) origin(width, lineHeight float32) mgl32.Vec2 {
	x, y := s.Position.X(), s.Position.Y()
	switch {
	case s.Alignment&AlignLeft != 0:
	case s.Alignment&AlignHCenter != 0:
		x += (s.Size.X() - width) / 2
	default:
		x += s.Size.X() - width
	}
	switch {
	case s.Alignment&AlignTop != 0:
	case s.Alignment&AlignVCenter != 0:
		y += (s.Size.Y() - lineHeight) / 2
	default:
		y += s.Size.Y() - lineHeight
	}
	return mgl32.Vec2{x, y}
}

// glyphQuads lays s.Text out along the baseline, one command per visible glyph.
func (s TextState) glyphQuads(font text.Table) []DrawCommand {
	o := s.origin(text.Measure(font, s.Text), font.LineHeight())
	cmds := make([]DrawCommand, 0, len(s.Text))
	var pen float32
	for _, r := range s.Text {
		g := text.Resolve(font, r)
		if g.W > 0 && g.H > 0 {
			pos := mgl32.Vec2{o.X() + pen + g.BearingX, o.Y() + g.Offset}
			cmds = append(cmds, Quad(pos, mgl32.Vec2{g.W, g.H}, s.Color, g.UV))
		}
		pen += g.Advance
	}
	return cmds
}

type textHandler[S any] struct{}

func (textHandler[S]) initialize(c Context[S]) Context[S] {
	return c.prepend(newTextState(c.level))
}

func (textHandler[S]) update(c Context[S], props []Prop) Context[S] {
	return c.repack(Apply(readControl[TextState](c, KindText), props...))
}

func (textHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	st := readControl[TextState](c, KindText)
	font := c.root().Font
	if st.Text == "" || font == nil || st.Color[3] <= 0 {
		return c.repack(st.cleared())
	}
	l := st.layout()
	if st.laidOut != nil && *st.laidOut == l {
		return c
	}
	st.commands = st.glyphQuads(font)
	st.laidOut = &l
	return c.repack(st)
}

func (textHandler[S]) noop(c Context[S], _ []Prop) Context[S] {
	return c.repack(readControl[TextState](c, KindText).cleared())
}
