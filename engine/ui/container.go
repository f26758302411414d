package ui

import "github.com/go-gl/mathgl/mgl32"

// ContainerState groups children without drawing anything itself.
type ContainerState struct {
	level    int
	Size     mgl32.Vec2
	Position mgl32.Vec2
}

func (s ContainerState) Tag() Tag { return Tag{Kind: KindContainer, Level: s.level} }

func (s ContainerState) with(p Prop) ContainerState {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	}
	return s
}

type containerHandler[S any] struct{}

func (containerHandler[S]) initialize(c Context[S]) Context[S] {
	return c.prepend(ContainerState{level: c.level})
}

func (containerHandler[S]) update(c Context[S], props []Prop) Context[S] {
	return c.repack(Apply(readControl[ContainerState](c, KindContainer), props...))
}

func (containerHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	readControl[ContainerState](c, KindContainer)
	return c
}

func (containerHandler[S]) noop(c Context[S], _ []Prop) Context[S] { return c }
