package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/colors"
)

// RectangleState is a solid filled quad.
type RectangleState struct {
	level    int
	Size     mgl32.Vec2
	Position mgl32.Vec2
	Color    colors.Color
	command  DrawCommand
	drawn    bool
}

func (s RectangleState) Tag() Tag { return Tag{Kind: KindRectangle, Level: s.level} }

func (s RectangleState) DrawCommands() []DrawCommand {
	if !s.drawn {
		return nil
	}
	return []DrawCommand{s.command}
}

func (s RectangleState) with(p Prop) RectangleState {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	case FieldColor:
		s.Color = p.color()
	}
	return s
}

type rectangleHandler[S any] struct{}

func (rectangleHandler[S]) initialize(c Context[S]) Context[S] {
	return c.prepend(RectangleState{level: c.level})
}

func (rectangleHandler[S]) update(c Context[S], props []Prop) Context[S] {
	return c.repack(Apply(readControl[RectangleState](c, KindRectangle), props...))
}

func (rectangleHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	st := readControl[RectangleState](c, KindRectangle)
	st.command, st.drawn = DrawCommand{}, false
	if st.Color[3] > 0 && st.Size.X() > 0 && st.Size.Y() > 0 {
		st.command, st.drawn = Quad(st.Position, st.Size, st.Color, [4]float32{}), true
	}
	return c.repack(st)
}

func (rectangleHandler[S]) noop(c Context[S], _ []Prop) Context[S] {
	st := readControl[RectangleState](c, KindRectangle)
	st.command, st.drawn = DrawCommand{}, false
	return c.repack(st)
}
