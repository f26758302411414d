package ui

import (
	"fmt"
	"slices"
)

// Kind is the closed set of slot types.
type Kind uint8

const (
	KindRoot Kind = iota
	KindUser
	KindContainer
	KindRectangle
	KindText
	KindTextBox
	KindButton
	KindMouseArea
)

var kindNames = [...]string{
	KindRoot:      "root",
	KindUser:      "user",
	KindContainer: "container",
	KindRectangle: "rectangle",
	KindText:      "text",
	KindTextBox:   "textbox",
	KindButton:    "button",
	KindMouseArea: "mousearea",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Tag identifies a slot: widget kind plus the level assigned during the walk.
type Tag struct {
	Kind  Kind
	Level int
}

func (t Tag) String() string { return fmt.Sprintf("%v@%d", t.Kind, t.Level) }

// Slot is one element of the state stack.
type Slot interface {
	Tag() Tag
}

type userSlot[S any] struct{ value S }

func (userSlot[S]) Tag() Tag { return Tag{Kind: KindUser} }

// Stack is the ordered state of one frame: the root state first, control
// states next (most recently initialized nearest the root) and the
// application state last. Stack values are never mutated; every operation
// returns a new stack.
type Stack[S any] struct {
	slots []Slot
}

func NewStack[S any](root RootState, user S) Stack[S] {
	return Stack[S]{slots: []Slot{root, userSlot[S]{value: user}}}
}

func (s Stack[S]) Len() int        { return len(s.slots) }
func (s Stack[S]) At(i int) Slot   { return s.slots[i] }
func (s Stack[S]) Root() RootState { return s.slots[0].(RootState) }
func (s Stack[S]) User() S         { return s.slots[len(s.slots)-1].(userSlot[S]).value }

// Tags returns the per-slot tag sequence.
func (s Stack[S]) Tags() []Tag {
	tags := make([]Tag, len(s.slots))
	for i, sl := range s.slots {
		tags[i] = sl.Tag()
	}
	return tags
}

func (s Stack[S]) WithRoot(r RootState) Stack[S] { return s.Repack(r) }
func (s Stack[S]) WithUser(u S) Stack[S]         { return s.Repack(userSlot[S]{value: u}) }

// Prepend adds a new control state directly after the root slot.
func (s Stack[S]) Prepend(v Slot) Stack[S] {
	tag := v.Tag()
	if tag.Kind == KindRoot || tag.Kind == KindUser {
		panic(&StructuralError{Op: "prepend", Tag: tag, Detail: "fixed slots cannot be prepended"})
	}
	if _, n := s.index(tag); n != 0 {
		structural("prepend", tag, n+1)
	}
	out := make([]Slot, 0, len(s.slots)+1)
	out = append(out, s.slots[0], v)
	out = append(out, s.slots[1:]...)
	return Stack[S]{slots: out}
}

// Repack replaces the unique slot whose tag matches v's tag and leaves
// every other slot in place.
func (s Stack[S]) Repack(v Slot) Stack[S] {
	tag := v.Tag()
	i, n := s.index(tag)
	if n != 1 {
		structural("repack", tag, n)
	}
	if _, ok := v.(userSlot[S]); tag.Kind == KindUser && !ok {
		panic(&StructuralError{Op: "repack", Tag: tag, Detail: fmt.Sprintf("user slot holds %T", v)})
	}
	out := slices.Clone(s.slots)
	out[i] = v
	return Stack[S]{slots: out}
}

// Find returns the unique slot with the given tag.
func (s Stack[S]) Find(tag Tag) (Slot, bool) {
	i, n := s.index(tag)
	switch n {
	case 0:
		return nil, false
	case 1:
		return s.slots[i], true
	}
	structural("find", tag, n)
	return nil, false
}

func (s Stack[S]) index(tag Tag) (at, matches int) {
	at = -1
	for i, sl := range s.slots {
		if sl.Tag() == tag {
			if matches == 0 {
				at = i
			}
			matches++
		}
	}
	return at, matches
}
