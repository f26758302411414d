package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/text"
)

// NoFocus is the Focused value when no text box owns the keyboard.
const NoFocus = -1

// RootState is slot 0 of every stack: the frame's input event, the last
// known pointer position, keyboard focus and the glyph table.
type RootState struct {
	Event   core.Event
	Pointer mgl32.Vec2
	// HasPointer is false until an event carried pointer coordinates.
	HasPointer bool
	Focused    int
	Font       text.Table
}

func NewRootState(font text.Table) RootState {
	return RootState{Focused: NoFocus, Font: font}
}

func (RootState) Tag() Tag { return Tag{Kind: KindRoot} }

// WithEvent records ev as the frame's event and tracks the pointer.
func (r RootState) WithEvent(ev core.Event) RootState {
	r.Event = ev
	switch e := ev.(type) {
	case core.EventMouseMove:
		r.Pointer, r.HasPointer = mgl32.Vec2{float32(e.X), float32(e.Y)}, true
	case core.EventMouseButton:
		r.Pointer, r.HasPointer = mgl32.Vec2{float32(e.X), float32(e.Y)}, true
	}
	return r
}

func (r RootState) WithFocused(level int) RootState {
	r.Focused = level
	return r
}

// ButtonDown reports whether the frame's event is a primary button press.
func (r RootState) ButtonDown() bool {
	e, ok := r.Event.(core.EventMouseButton)
	return ok && e.Down && e.Button == core.MouseLeft
}

// Moved reports whether the frame's event is pointer motion.
func (r RootState) Moved() bool {
	_, ok := r.Event.(core.EventMouseMove)
	return ok
}

// Contains is the hit test shared by interactive widgets: a half-open
// axis-aligned rectangle at pos with extent size.
func Contains(pos, size, p mgl32.Vec2) bool {
	return p.X() >= pos.X() && p.X() < pos.X()+size.X() &&
		p.Y() >= pos.Y() && p.Y() < pos.Y()+size.Y()
}

func (r RootState) hit(pos, size mgl32.Vec2) bool {
	return r.HasPointer && Contains(pos, size, r.Pointer)
}
