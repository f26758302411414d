package ui

import (
	"slices"
	"testing"

	"github.com/hubastard/foam/engine/core"
)

func mixed(t *Tree, _ int) Node {
	return t.Container(
		t.Rectangle(t.Rectangle()),
		t.Rectangle(),
		t.Container(t.Text()),
	)
}

func TestBuild_PreOrderLevels(t *testing.T) {
	s := Evaluate(PhaseInitialize, nil, NewStack(NewRootState(nil), 0), mixed)

	want := []Tag{
		{Kind: KindRoot},
		{Kind: KindText, Level: 6},
		{Kind: KindContainer, Level: 5},
		{Kind: KindRectangle, Level: 4},
		{Kind: KindRectangle, Level: 3},
		{Kind: KindRectangle, Level: 2},
		{Kind: KindContainer, Level: 1},
		{Kind: KindUser},
	}
	if got := s.Tags(); !slices.Equal(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestEvaluate_FrameShapeInvariance(t *testing.T) {
	events := []core.Event{
		move(15, 105), press(15, 105), release(15, 105),
		move(125, 105), press(125, 105), press(5, 5),
		core.EventChar{Rune: 'x'}, core.EventResize{W: 10, H: 10}, nil,
	}

	t.Run("counter", func(t *testing.T) {
		init := Evaluate(PhaseInitialize, nil, NewStack(NewRootState(nil), counter{}), counterLayout)
		want := init.Tags()
		h := newHarness(counter{}, testFont(), counterLayout)
		for _, ev := range events {
			h.step(ev)
			if got := h.stack.Tags(); !slices.Equal(got, want) {
				t.Fatalf("after %#v: Tags() = %v, want %v", ev, got, want)
			}
		}
	})

	t.Run("form", func(t *testing.T) {
		init := Evaluate(PhaseInitialize, nil, NewStack(NewRootState(nil), form{}), formLayout)
		want := init.Tags()
		h := newHarness(form{}, testFont(), formLayout)
		for _, ev := range events {
			h.step(ev)
			if got := h.stack.Tags(); !slices.Equal(got, want) {
				t.Fatalf("after %#v: Tags() = %v, want %v", ev, got, want)
			}
		}
	})
}

type grow struct{ extra bool }

func growLayout(t *Tree, s grow) Node {
	if s.extra {
		return t.Container(t.Rectangle(), t.Rectangle())
	}
	return t.Container(t.Rectangle())
}

func TestEvaluate_ShapeChangePanics(t *testing.T) {
	h := newHarness(grow{}, nil, growLayout)
	s := h.stack.WithUser(grow{extra: true})

	e := expectStructural(t, func() { Evaluate(PhaseUpdate, nil, s, growLayout) })
	if e.Tag != (Tag{Kind: KindRectangle, Level: 3}) {
		t.Errorf("Tag = %v, want rectangle@3", e.Tag)
	}
}

func TestEvaluate_KindChangePanics(t *testing.T) {
	s := Evaluate(PhaseInitialize, nil, NewStack(NewRootState(nil), 0),
		func(t *Tree, _ int) Node { return t.Rectangle() })

	expectStructural(t, func() {
		Evaluate(PhaseUpdate, nil, s, func(t *Tree, _ int) Node { return t.Text() })
	})
}

func TestBuild_NodeOutOfRange(t *testing.T) {
	c := NewContext(PhaseUpdate, nil, NewStack(NewRootState(nil), 0))
	expectStructural(t, func() { Build(NewTree(), c, Node(3)) })
}

func TestTree_ForeignChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding a child from another tree did not panic")
		}
	}()
	NewTree().Container(Node(4))
}

func TestContext_Phase(t *testing.T) {
	c := NewContext(PhaseDraw, nil, NewStack(NewRootState(nil), 0))
	if c.Phase() != PhaseDraw {
		t.Errorf("Phase() = %v, want draw", c.Phase())
	}
	if got := c.suppress(true).Phase(); got != PhaseNoop {
		t.Errorf("suppressed Phase() = %v, want noop", got)
	}
	if c.Style() == nil {
		t.Error("nil style did not fall back to DefaultStyle")
	}
}
