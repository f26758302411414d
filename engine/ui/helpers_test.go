package ui

import (
	"strconv"
	"testing"

	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/text"
)

// harness drives a layout through the same phase sequence as app.Engine.
type harness[S any] struct {
	style  *Style
	layout Layout[S]
	stack  Stack[S]
}

func newHarness[S any](user S, font text.Table, layout Layout[S]) *harness[S] {
	h := &harness[S]{style: DefaultStyle(), layout: layout, stack: NewStack(NewRootState(font), user)}
	h.stack = Evaluate(PhaseInitialize, h.style, h.stack, layout)
	h.step(nil)
	return h
}

func (h *harness[S]) step(ev core.Event) {
	h.stack = h.stack.WithRoot(h.stack.Root().WithEvent(ev))
	h.stack = Evaluate(PhaseUpdate, h.style, h.stack, h.layout)
	h.stack = Evaluate(PhaseDraw, h.style, h.stack, h.layout)
}

func slotAt[T Slot, S any](t *testing.T, s Stack[S], k Kind, level int) T {
	t.Helper()
	sl, ok := s.Find(Tag{Kind: k, Level: level})
	if !ok {
		t.Fatalf("no %v slot at level %d", k, level)
	}
	st, ok := sl.(T)
	if !ok {
		t.Fatalf("slot %v@%d holds %T", k, level, sl)
	}
	return st
}

func expectStructural(t *testing.T, fn func()) *StructuralError {
	t.Helper()
	var got *StructuralError
	func() {
		defer func() {
			r := recover()
			e, ok := r.(*StructuralError)
			if !ok {
				t.Fatalf("panic = %v, want *StructuralError", r)
			}
			got = e
		}()
		fn()
	}()
	return got
}

func testFont() *text.StaticTable {
	uv := [4]float32{0.5, 0.5, 0.25, 0.25}
	return text.NewTable(20,
		text.Glyph{Rune: ' ', Advance: 5},
		text.Glyph{Rune: 'a', Advance: 10, BearingX: 1, Offset: 2, W: 8, H: 12, UV: uv},
		text.Glyph{Rune: 'b', Advance: 10, BearingX: 1, Offset: 2, W: 8, H: 12, UV: uv},
	)
}

func move(x, y float64) core.Event { return core.EventMouseMove{X: x, Y: y} }

func press(x, y float64) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, Down: true, X: x, Y: y}
}

func release(x, y float64) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, X: x, Y: y}
}

type counter struct {
	clicks int
	resets int
}

// counterLayout is two 100x30 buttons side by side. Levels: container 1,
// first button 2 (templates 3-14), second button 15 (templates 16-27).
func counterLayout(t *Tree, s counter) Node {
	return t.Container(
		t.Button(
			Position(10, 100), Size(100, 30),
			Text(strconv.Itoa(s.clicks)),
			OnClicked(func(c counter) counter { c.clicks++; return c }),
		),
		t.Button(
			Position(120, 100), Size(100, 30),
			Text("reset"),
			OnClicked(func(c counter) counter { c.clicks = 0; c.resets++; return c }),
		),
	)
}
