package ui

import "fmt"

// Phase selects which widget behaviour runs during a walk.
type Phase uint8

const (
	PhaseInitialize Phase = iota
	PhaseUpdate
	PhaseDraw
	PhaseNoop
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialize:
		return "initialize"
	case PhaseUpdate:
		return "update"
	case PhaseDraw:
		return "draw"
	case PhaseNoop:
		return "noop"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Context threads the state stack through one tree walk.
//
// level is the pre-order number of the widget currently being handled.
// It is derived from tree position only, so a widget keeps its level
// across frames as long as the tree shape does not change.
//
// An inert walk still applies props but fires no callbacks and leaves
// keyboard focus alone.
type Context[S any] struct {
	phase      Phase
	suppressed bool
	inert      bool
	level      int
	stack      Stack[S]
	style      *Style
}

func NewContext[S any](phase Phase, style *Style, stack Stack[S]) Context[S] {
	if style == nil {
		style = DefaultStyle()
	}
	return Context[S]{phase: phase, stack: stack, style: style}
}

// Phase reports PhaseNoop inside a suppressed subtree.
func (c Context[S]) Phase() Phase {
	if c.suppressed {
		return PhaseNoop
	}
	return c.phase
}

func (c Context[S]) Level() int       { return c.level }
func (c Context[S]) Stack() Stack[S]  { return c.stack }
func (c Context[S]) Style() *Style    { return c.style }
func (c Context[S]) Suppressed() bool { return c.suppressed }
func (c Context[S]) Inert() bool      { return c.inert }

func (c Context[S]) levelUp() Context[S] {
	c.level++
	return c
}

func (c Context[S]) suppress(on bool) Context[S] {
	c.suppressed = on
	return c
}

func (c Context[S]) setInert(on bool) Context[S] {
	c.inert = on
	return c
}

func (c Context[S]) withStack(s Stack[S]) Context[S] {
	c.stack = s
	return c
}

func (c Context[S]) prepend(v Slot) Context[S] { return c.withStack(c.stack.Prepend(v)) }
func (c Context[S]) repack(v Slot) Context[S]  { return c.withStack(c.stack.Repack(v)) }
func (c Context[S]) root() RootState           { return c.stack.Root() }
func (c Context[S]) user() S                   { return c.stack.User() }
func (c Context[S]) withUser(u S) Context[S]   { return c.withStack(c.stack.WithUser(u)) }

// readControl returns the control state of kind k owned by the current level.
func readControl[T Slot, S any](c Context[S], k Kind) T {
	tag := Tag{Kind: k, Level: c.level}
	sl, ok := c.stack.Find(tag)
	if !ok {
		structural("read", tag, 0)
	}
	st, ok := sl.(T)
	if !ok {
		var want T
		panic(&StructuralError{Op: "read", Tag: tag, Detail: fmt.Sprintf("slot holds %T, want %T", sl, want)})
	}
	return st
}
