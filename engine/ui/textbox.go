package ui

import (
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/core"
)

// TextBoxState is an editable single-line field. Keyboard focus lives in
// RootState.Focused as the owning box's level.
type TextBoxState[S any] struct {
	level         int
	Visual        VisualState
	Size          mgl32.Vec2
	Position      mgl32.Vec2
	Text          string
	Disabled      bool
	OnTextChanged func(S, string) S
}

func (s TextBoxState[S]) Tag() Tag { return Tag{Kind: KindTextBox, Level: s.level} }

func (s TextBoxState[S]) with(p Prop) TextBoxState[S] {
	switch p.field {
	case FieldSize:
		s.Size = p.vec2()
	case FieldPosition:
		s.Position = p.vec2()
	case FieldText:
		s.Text = p.str()
	case FieldDisabled:
		s.Disabled = p.flag()
	case FieldOnTextChanged:
		s.OnTextChanged = textCallback[S](p)
	}
	return s
}

func (s TextBoxState[S]) view(focused bool) View {
	return View{Visual: s.Visual, Size: s.Size, Position: s.Position, Text: s.Text, Focused: focused}
}

// edit applies a typing event to text.
func edit(text string, ev core.Event) (string, bool) {
	switch e := ev.(type) {
	case core.EventChar:
		return text + string(e.Rune), true
	case core.EventKey:
		if e.Down && e.Key == core.KeyBackspace && text != "" {
			_, n := utf8.DecodeLastRuneInString(text)
			return text[:len(text)-n], true
		}
	}
	return text, false
}

type textBoxHandler[S any] struct{}

func (textBoxHandler[S]) templates(c Context[S], st TextBoxState[S]) Context[S] {
	focused := c.root().Focused == st.level
	active := st.Visual.variant()
	if focused {
		active = 2
	}
	ts := c.style.TextBox
	return expandTemplates(c, active, st.view(focused), ts.Normal, ts.Hover, ts.Focused)
}

func (h textBoxHandler[S]) initialize(c Context[S]) Context[S] {
	st := TextBoxState[S]{level: c.level}
	return h.templates(c.prepend(st), st)
}

func (h textBoxHandler[S]) update(c Context[S], props []Prop) Context[S] {
	st := Apply(readControl[TextBoxState[S]](c, KindTextBox), props...)
	root := c.root()
	inside := root.hit(st.Position, st.Size)

	switch {
	case st.Disabled:
		st.Visual = VisualDisabled
	case inside:
		st.Visual = VisualHover
	default:
		st.Visual = VisualNormal
	}

	switch {
	case c.inert:
	case st.Disabled && root.Focused == c.level:
		root = root.WithFocused(NoFocus)
	case st.Disabled:
	case root.ButtonDown() && inside:
		root = root.WithFocused(c.level)
	case root.ButtonDown() && root.Focused == c.level:
		root = root.WithFocused(NoFocus)
	}
	c = c.repack(root)

	if root.Focused == c.level && !c.inert {
		if text, changed := edit(st.Text, root.Event); changed {
			st.Text = text
			if st.OnTextChanged != nil {
				c = c.withUser(st.OnTextChanged(c.user(), text))
			}
		}
	}
	c = c.repack(st)
	return h.templates(c, st)
}

func (h textBoxHandler[S]) draw(c Context[S], _ []Prop) Context[S] {
	return h.templates(c, readControl[TextBoxState[S]](c, KindTextBox))
}

func (h textBoxHandler[S]) noop(c Context[S], _ []Prop) Context[S] {
	return h.templates(c, readControl[TextBoxState[S]](c, KindTextBox))
}
