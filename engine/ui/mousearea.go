package ui

import "github.com/go-gl/mathgl/mgl32"

// MouseAreaState is an invisible hit region.
type MouseAreaState[S any] struct {
	level       int
	Size        mgl32.Vec2
	Position    mgl32.Vec2
	OnMouseOver func(S) S
	OnClick     func(S) S
	Inside      bool
}

func (s MouseAreaState[S]) Tag() Tag { return Tag{Kind: KindMouseArea, Level: s.level} }

func (s MouseAreaState[S]) with(p Prop) MouseAreaState[S] {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	case FieldOnClicked:
		s.OnClick = callback[S](p)
	case FieldOnMouseOver:
		s.OnMouseOver = callback[S](p)
	}
	return s
}

type mouseAreaHandler[S any] struct{}

func (mouseAreaHandler[S]) initialize(c Context[S]) Context[S] {
	return c.prepend(MouseAreaState[S]{level: c.level})
}

func (mouseAreaHandler[S]) update(c Context[S], props []Prop) Context[S] {
	st := Apply(readControl[MouseAreaState[S]](c, KindMouseArea), props...)
	root := c.root()
	st.Inside = root.hit(st.Position, st.Size)
	c = c.repack(st)

	if !st.Inside || c.inert {
		return c
	}
	if root.Moved() && st.OnMouseOver != nil {
		c = c.withUser(st.OnMouseOver(c.user()))
	}
	if root.ButtonDown() && st.OnClick != nil {
		c = c.withUser(st.OnClick(c.user()))
	}
	return c
}

func (mouseAreaHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	readControl[MouseAreaState[S]](c, KindMouseArea)
	return c
}

func (mouseAreaHandler[S]) noop(c Context[S], _ []Prop) Context[S] { return c }
