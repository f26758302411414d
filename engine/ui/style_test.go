package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/colors"
	"github.com/hubastard/foam/engine/core"
)

func singleButton(t *Tree, _ int) Node {
	return t.Button(Position(0, 0), Size(100, 30), Text("ok"))
}

// A lone button sits at level 1; its Normal, Hover and Pressed templates
// start at levels 2, 6 and 10 with three rectangles and a caption each.
var variantRects = [3][3]int{{2, 3, 4}, {6, 7, 8}, {10, 11, 12}}

func drawnPerVariant(t *testing.T, s Stack[int]) [3]int {
	t.Helper()
	var out [3]int
	for v, levels := range variantRects {
		for _, l := range levels {
			out[v] += len(slotAt[RectangleState](t, s, KindRectangle, l).DrawCommands())
		}
	}
	return out
}

func TestExpandTemplates_OnlyActiveVariantDraws(t *testing.T) {
	type tc struct {
		events []core.Event
		want   [3]int
	}

	tests := map[string]tc{
		"normal":  {want: [3]int{3, 0, 0}},
		"hover":   {events: []core.Event{move(5, 5)}, want: [3]int{0, 3, 0}},
		"pressed": {events: []core.Event{press(5, 5)}, want: [3]int{0, 0, 3}},
		"back to normal": {
			events: []core.Event{move(5, 5), press(5, 5), move(300, 300)},
			want:   [3]int{3, 0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(0, nil, singleButton)
			for _, ev := range tt.events {
				h.step(ev)
			}
			if got := drawnPerVariant(t, h.stack); got != tt.want {
				t.Errorf("drawn per variant = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandTemplates_InactiveVariantsStillUpdate(t *testing.T) {
	h := newHarness(0, nil, singleButton)

	// Hover shadow is inactive but its props were applied during Update.
	st := slotAt[RectangleState](t, h.stack, KindRectangle, 6)
	if st.Size != (mgl32.Vec2{100, 31}) {
		t.Errorf("inactive shadow size = %v, want (100,31)", st.Size)
	}
}

func TestExpandTemplates_RestoresSuppression(t *testing.T) {
	h := newHarness(0, nil, singleButton)
	bs := h.style.Button
	v := View{Size: mgl32.Vec2{100, 30}}

	for _, ambient := range []bool{false, true} {
		c := NewContext(PhaseDraw, h.style, h.stack).suppress(ambient).levelUp()
		out := expandTemplates(c, 1, v, bs.Normal, bs.Hover, bs.Pressed)
		if out.Suppressed() != ambient {
			t.Errorf("ambient %v: Suppressed() = %v after expansion", ambient, out.Suppressed())
		}
		if out.Inert() {
			t.Errorf("ambient %v: Inert() = true after expansion", ambient)
		}
		if out.Level() != 13 {
			t.Errorf("ambient %v: Level() = %d, want 13", ambient, out.Level())
		}
	}
}

func TestCustomStyle(t *testing.T) {
	solid := func(c colors.Color) Template {
		return func(t *Tree, v View) Node {
			return t.Rectangle(SizeVec(v.Size), PositionVec(v.Position), Color(c))
		}
	}
	style := &Style{
		Button:  ButtonStyle{Normal: solid(colors.Gray), Hover: solid(colors.Green), Pressed: solid(colors.Red)},
		TextBox: DefaultStyle().TextBox,
	}

	s := NewStack(NewRootState(nil), 0)
	s = Evaluate(PhaseInitialize, style, s, singleButton)
	s = s.WithRoot(s.Root().WithEvent(move(1, 1)))
	s = Evaluate(PhaseUpdate, style, s, singleButton)
	s = Evaluate(PhaseDraw, style, s, singleButton)

	b := Extract(s)
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if b.Commands()[0].Color != colors.Green.Pack() {
		t.Errorf("color = %#x, want the Hover template's", b.Commands()[0].Color)
	}
}

func TestExpandTemplates_InactiveVariantsFireNoCallbacks(t *testing.T) {
	hotArea := func(t *Tree, v View) Node {
		return t.Rectangle(
			SizeVec(v.Size), PositionVec(v.Position), Color(colors.Gray),
			t.MouseArea(
				SizeVec(v.Size), PositionVec(v.Position),
				OnMouseOver(func(n int) int { return n + 1 }),
				OnClicked(func(n int) int { return n + 100 }),
			),
		)
	}
	style := &Style{
		Button:  ButtonStyle{Normal: hotArea, Hover: hotArea, Pressed: hotArea},
		TextBox: DefaultStyle().TextBox,
	}

	type tc struct {
		ev   core.Event
		want int
	}

	tests := map[string]tc{
		"press": {ev: press(5, 5), want: 100},
		"move":  {ev: move(5, 5), want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Evaluate(PhaseInitialize, style, NewStack(NewRootState(nil), 0), singleButton)
			s = s.WithRoot(s.Root().WithEvent(tt.ev))
			s = Evaluate(PhaseUpdate, style, s, singleButton)
			s = Evaluate(PhaseDraw, style, s, singleButton)
			if got := s.User(); got != tt.want {
				t.Errorf("state after one event = %d, want %d", got, tt.want)
			}
		})
	}
}
