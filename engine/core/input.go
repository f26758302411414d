package core

// Input keeps the pointer position so events without coordinates
// (button presses from GLFW) can be stamped with it. Cursor positions
// arrive in window coordinates and are scaled to framebuffer pixels.
type Input struct {
	mouseX, mouseY float64
	scaleX, scaleY float64
	buttons        [3]bool
}

func NewInput() *Input { return &Input{scaleX: 1, scaleY: 1} }

// SetScale sets the framebuffer-to-window size ratio. Non-positive factors
// count as 1.
func (in *Input) SetScale(sx, sy float64) {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	in.scaleX, in.scaleY = sx, sy
}

// Handle records ev and returns it with pointer coordinates filled in.
func (in *Input) Handle(ev Event) Event {
	switch e := ev.(type) {
	case EventMouseMove:
		if in.scaleX > 0 {
			e.X *= in.scaleX
		}
		if in.scaleY > 0 {
			e.Y *= in.scaleY
		}
		in.mouseX, in.mouseY = e.X, e.Y
		return e
	case EventMouseButton:
		e.X, e.Y = in.mouseX, in.mouseY
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
		return e
	}
	return ev
}

func (in *Input) IsButtonDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
