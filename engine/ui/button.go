package ui

import "github.com/go-gl/mathgl/mgl32"

// ButtonState is a clickable control drawn through the style's button templates.
type ButtonState[S any] struct {
	level     int
	Visual    VisualState
	Size      mgl32.Vec2
	Position  mgl32.Vec2
	Text      string
	Disabled  bool
	OnClicked func(S) S
}

func (s ButtonState[S]) Tag() Tag { return Tag{Kind: KindButton, Level: s.level} }

func (s ButtonState[S]) with(p Prop) ButtonState[S] {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	case FieldText:
		s.Text = p.str()
	case FieldDisabled:
		s.Disabled = p.flag()
	case FieldOnClicked:
		s.OnClicked = callback[S](p)
	}
	return s
}

func (s ButtonState[S]) view() View {
	return View{Visual: s.Visual, Size: s.Size, Position: s.Position, Text: s.Text}
}

// Classify picks the visual state of an interactive control: outside the
// bounds is Normal, inside on a button-down event is Pressed, inside
// otherwise is Hover.
func Classify(inside, buttonDown bool) VisualState {
	switch {
	case !inside:
		return VisualNormal
	case buttonDown:
		return VisualPressed
	default:
		return VisualHover
	}
}

// variant maps a visual state onto the Normal/Hover/Pressed template index.
func (v VisualState) variant() int {
	switch v {
	case VisualHover:
		return 1
	case VisualPressed:
		return 2
	}
	return 0
}

type buttonHandler[S any] struct{}

func (buttonHandler[S]) templates(c Context[S], st ButtonState[S]) Context[S] {
	bs := c.style.Button
	return expandTemplates(c, st.Visual.variant(), st.view(), bs.Normal, bs.Hover, bs.Pressed)
}

func (h buttonHandler[S]) initialize(c Context[S]) Context[S] {
	st := ButtonState[S]{level: c.level}
	return h.templates(c.prepend(st), st)
}

func (h buttonHandler[S]) update(c Context[S], props []Prop) Context[S] {
	st := Apply(readControl[ButtonState[S]](c, KindButton), props...)
	root := c.root()
	inside := root.hit(st.Position, st.Size)

	if st.Disabled {
		st.Visual = VisualDisabled
	} else {
		st.Visual = Classify(inside, root.ButtonDown())
	}
	c = c.repack(st)

	if !c.inert && !st.Disabled && inside && root.ButtonDown() && st.OnClicked != nil {
		c = c.withUser(st.OnClicked(c.user()))
	}
	return h.templates(c, st)
}

func (h buttonHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	return h.templates(c, readControl[ButtonState[S]](c, KindButton))
}

func (h buttonHandler[S]) noop(c Context[S], _ []Prop) Context[S] {
	return h.templates(c, readControl[ButtonState[S]](c, KindButton))
}
