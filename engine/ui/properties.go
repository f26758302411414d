package ui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/colors"
)

// Field names the control-state field a Prop writes.
type Field uint8

const (
	FieldSize Field = iota
	FieldPosition
	FieldColor
	FieldText
	FieldAlignment
	FieldDisabled
	FieldOnClicked
	FieldOnMouseOver
	FieldOnTextChanged
)

// Prop is a property setter: a field tag plus the value to write.
// Props are applied left to right, so a later setter for the same field wins.
type Prop struct {
	field Field
	value any
}

func (p Prop) Field() Field { return p.field }

func Size(w, h float32) Prop         { return Prop{FieldSize, mgl32.Vec2{w, h}} }
func Position(x, y float32) Prop     { return Prop{FieldPosition, mgl32.Vec2{x, y}} }
func Color(c colors.Color) Prop      { return Prop{FieldColor, c} }
func Text(s string) Prop             { return Prop{FieldText, s} }
func Alignment(a Align) Prop         { return Prop{FieldAlignment, a} }
func Disabled(disabled bool) Prop    { return Prop{FieldDisabled, disabled} }
func SizeVec(v mgl32.Vec2) Prop      { return Prop{FieldSize, v} }
func PositionVec(v mgl32.Vec2) Prop  { return Prop{FieldPosition, v} }

func OnClicked[S any](fn func(S) S) Prop   { return Prop{FieldOnClicked, fn} }
func OnMouseOver[S any](fn func(S) S) Prop { return Prop{FieldOnMouseOver, fn} }

// OnTextChanged receives the user state and the edited text.
func OnTextChanged[S any](fn func(S, string) S) Prop { return Prop{FieldOnTextChanged, fn} }

func (p Prop) vec2() mgl32.Vec2    { return p.value.(mgl32.Vec2) }
func (p Prop) color() colors.Color { return p.value.(colors.Color) }
func (p Prop) str() string         { return p.value.(string) }
func (p Prop) align() Align        { return p.value.(Align) }
func (p Prop) flag() bool          { return p.value.(bool) }

func callback[S any](p Prop) func(S) S {
	fn, ok := p.value.(func(S) S)
	if !ok {
		var zero S
		panic(fmt.Sprintf("ui: field %d holds %T, want func(%T) %T", p.field, p.value, zero, zero))
	}
	return fn
}

func textCallback[S any](p Prop) func(S, string) S {
	fn, ok := p.value.(func(S, string) S)
	if !ok {
		var zero S
		panic(fmt.Sprintf("ui: field %d holds %T, want func(%T, string) %T", p.field, p.value, zero, zero))
	}
	return fn
}

// settable is implemented by control states: with returns a copy of the
// state with one field overwritten. Fields a state does not carry are ignored.
type settable[T any] interface {
	with(p Prop) T
}

// Apply folds props over base left to right.
func Apply[T settable[T]](base T, props ...Prop) T {
	for _, p := range props {
		base = base.with(p)
	}
	return base
}
