package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/foam/engine/core"
)

// GLFWWindow implements core.Window. GLFW callbacks append translated
// events to a queue that WaitEvent drains one at a time.
type GLFWWindow struct {
	w      *glfw.Window
	input  *core.Input
	queue  []core.Event
	closed bool
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gw := &GLFWWindow{w: win, input: core.NewInput()}
	gw.updateScale()

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.push(core.EventQuit{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.updateScale()
		gw.push(core.EventResize{W: w, H: h})
	})
	win.SetSizeCallback(func(*glfw.Window, int, int) { gw.updateScale() })
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.push(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok || action == glfw.Repeat {
			return
		}
		gw.push(core.EventMouseButton{Button: btn, Down: action == glfw.Press})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.push(core.EventChar{Rune: r})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.push(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})

	return gw, nil
}

// updateScale keeps cursor coordinates in framebuffer pixels, the space
// the camera projects into.
func (g *GLFWWindow) updateScale() {
	fw, fh := g.w.GetFramebufferSize()
	ww, wh := g.w.GetSize()
	g.input.SetScale(scaleRatio(fw, ww), scaleRatio(fh, wh))
}

func scaleRatio(framebuffer, window int) float64 {
	if framebuffer <= 0 || window <= 0 {
		return 1
	}
	return float64(framebuffer) / float64(window)
}

// push stamps pointer coordinates onto ev and queues it.
func (g *GLFWWindow) push(ev core.Event) {
	g.queue = append(g.queue, g.input.Handle(ev))
}

// WaitEvent blocks in glfw.WaitEvents until a callback queued something.
// Once the window is closed it keeps returning EventQuit.
func (g *GLFWWindow) WaitEvent() core.Event {
	if g.closed {
		return core.EventQuit{}
	}
	for len(g.queue) == 0 {
		glfw.WaitEvents()
	}
	ev := g.queue[0]
	g.queue[0] = nil
	g.queue = g.queue[1:]
	return ev
}

func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }

func (g *GLFWWindow) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.w.Destroy()
	glfw.Terminate()
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KeyEnter
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeyTab:
		return core.KeyTab
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
