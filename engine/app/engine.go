package app

import (
	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/profiler"
	"github.com/hubastard/foam/engine/text"
	"github.com/hubastard/foam/engine/ui"
)

// Engine owns the state stack of one widget tree and advances it one
// input event at a time.
type Engine[S any] struct {
	style  *ui.Style
	layout ui.Layout[S]
	stack  ui.Stack[S]
	frames int
}

func NewEngine[S any](initial S, font text.Table, style *ui.Style, layout ui.Layout[S]) *Engine[S] {
	if style == nil {
		style = ui.DefaultStyle()
	}
	return &Engine[S]{
		style:  style,
		layout: layout,
		stack:  ui.NewStack(ui.NewRootState(font), initial),
	}
}

// Initialize creates every control state, then runs an eventless
// Update and Draw so the first frame is ready before any input arrives.
func (e *Engine[S]) Initialize() {
	end := profiler.Start("ui.Initialize")
	e.stack = ui.Evaluate(ui.PhaseInitialize, e.style, e.stack, e.layout)
	end()
	e.Step(nil)
}

// Step injects ev into the root state and runs Update then Draw.
func (e *Engine[S]) Step(ev core.Event) {
	e.stack = e.stack.WithRoot(e.stack.Root().WithEvent(ev))

	end := profiler.Start("ui.Update")
	e.stack = ui.Evaluate(ui.PhaseUpdate, e.style, e.stack, e.layout)
	end()

	end = profiler.Start("ui.Draw")
	e.stack = ui.Evaluate(ui.PhaseDraw, e.style, e.stack, e.layout)
	end()
	e.frames++
}

// Batch extracts the draw commands of the last Draw pass.
func (e *Engine[S]) Batch() ui.Batch { return ui.Extract(e.stack) }

func (e *Engine[S]) State() S           { return e.stack.User() }
func (e *Engine[S]) Stack() ui.Stack[S] { return e.stack }
func (e *Engine[S]) Frames() int        { return e.frames }
