package app

import (
	"fmt"
	"runtime"

	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/gfx/renderer2d"
	"github.com/hubastard/foam/engine/profiler"
	"github.com/hubastard/foam/engine/scene"
	"github.com/hubastard/foam/engine/text"
	"github.com/hubastard/foam/engine/ui"
)

type options struct {
	style *ui.Style
	atlas *text.Atlas
}

type Option func(*options)

// WithStyle replaces ui.DefaultStyle.
func WithStyle(s *ui.Style) Option { return func(o *options) { o.style = s } }

// WithAtlas replaces the built-in Go Regular atlas.
func WithAtlas(a *text.Atlas) Option { return func(o *options) { o.atlas = a } }

// Run initializes the tree built by layout and then renders one frame per
// input event until the window reports EventQuit. It returns nil on quit.
func Run[S any](cfg core.Config, win core.Window, rend core.Renderer, initial S, layout ui.Layout[S], opts ...Option) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer func() {
		// The renderer needs the window's context, so it goes first.
		rend.Shutdown()
		win.Close()
	}()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.atlas == nil {
		a, err := text.Default(cfg.FontSize)
		if err != nil {
			return fmt.Errorf("build font atlas: %w", err)
		}
		o.atlas = a
	}
	tex, err := o.atlas.Upload(rend)
	if err != nil {
		return err
	}

	profiler.Init(1 << 16)
	log := core.Logger()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	cam := scene.NewPixelCamera2D(w, h)
	r2d := renderer2d.New(rend, tex, cfg.MaxInstances)

	eng := NewEngine(initial, o.atlas, o.style, layout)
	eng.Initialize()
	log.Info("engine started", "width", w, "height", h, "slots", eng.Stack().Len())

	present := func() error {
		end := profiler.Start("frame.Present")
		defer end()
		rend.Clear(cfg.ClearColor)
		r2d.BeginScene(cam.VP())
		if err := r2d.Submit(eng.Batch()); err != nil {
			return err
		}
		r2d.EndScene()
		win.SwapBuffers()
		return nil
	}

	if err := present(); err != nil {
		return err
	}
	for {
		ev := win.WaitEvent()
		if _, ok := ev.(core.EventQuit); ok {
			break
		}
		if r, ok := ev.(core.EventResize); ok {
			if r.W < 1 || r.H < 1 {
				continue
			}
			rend.Resize(r.W, r.H)
			cam.SetViewportPixels(r.W, r.H)
		}

		end := profiler.Start("frame")
		eng.Step(ev)
		err := present()
		end()
		if err != nil {
			return err
		}
	}

	log.Info("engine exit", "frames", eng.Frames())
	if cfg.ProfilePath != "" && profiler.Enabled {
		path, err := profiler.Dump(cfg.ProfilePath)
		if err != nil {
			log.Warn("profile dump failed", "err", err)
		} else {
			log.Info("profile written", "path", path)
		}
	}
	return nil
}
