package main

import (
	"testing"

	"github.com/hubastard/foam/engine/app"
	"github.com/hubastard/foam/engine/core"
)

func click(x, y float64) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, Down: true, X: x, Y: y}
}

func TestLayout(t *testing.T) {
	type tc struct {
		events []core.Event
		want   State
	}

	tests := map[string]tc{
		"increment": {
			events: []core.Event{click(15, 105), click(15, 105)},
			want:   State{Clicks: 2},
		},
		"reset is disabled at zero": {
			events: []core.Event{click(125, 105)},
			want:   State{},
		},
		"reset": {
			events: []core.Event{click(15, 105), click(125, 105)},
			want:   State{},
		},
		"hover banner": {
			events: []core.Event{core.EventMouseMove{X: 20, Y: 20}},
			want:   State{Hovered: true},
		},
		"hover leaves banner": {
			events: []core.Event{core.EventMouseMove{X: 20, Y: 20}, core.EventMouseMove{X: 500, Y: 500}},
			want:   State{},
		},
		"hover moves within banner": {
			events: []core.Event{core.EventMouseMove{X: 20, Y: 20}, core.EventMouseMove{X: 300, Y: 30}},
			want:   State{Hovered: true},
		},
		"type a name": {
			events: []core.Event{
				click(20, 160),
				core.EventChar{Rune: 'A'}, core.EventChar{Rune: 'd'}, core.EventChar{Rune: 'a'},
				core.EventKey{Key: core.KeyBackspace, Down: true},
				core.EventChar{Rune: 'i'},
			},
			want: State{Name: "Adi"},
		},
		"typing without focus": {
			events: []core.Event{core.EventChar{Rune: 'x'}},
			want:   State{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := app.NewEngine(State{}, nil, nil, layout)
			e.Initialize()
			for _, ev := range tt.events {
				e.Step(ev)
			}
			if got := e.State(); got != tt.want {
				t.Errorf("state = %+v, want %+v", got, tt.want)
			}
		})
	}
}
