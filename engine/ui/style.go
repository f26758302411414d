package ui

import "github.com/go-gl/mathgl/mgl32"

// VisualState is the interaction state of a control.
type VisualState uint8

const (
	VisualNormal VisualState = iota
	VisualHover
	VisualPressed
	VisualDisabled
)

func (v VisualState) String() string {
	switch v {
	case VisualNormal:
		return "normal"
	case VisualHover:
		return "hover"
	case VisualPressed:
		return "pressed"
	case VisualDisabled:
		return "disabled"
	}
	return "unknown"
}

// View is the read-only picture of a control handed to its templates.
type View struct {
	Visual   VisualState
	Size     mgl32.Vec2
	Position mgl32.Vec2
	Text     string
	Focused  bool
}

// Template builds one visual variant of a control. It must return a tree
// of the same shape for every View, otherwise levels drift between frames.
type Template func(t *Tree, v View) Node

type ButtonStyle struct {
	Normal, Hover, Pressed Template
}

type TextBoxStyle struct {
	Normal, Hover, Focused Template
}

type Style struct {
	Button  ButtonStyle
	TextBox TextBoxStyle
}

// expandTemplates builds every variant in list order. Inactive variants
// are walked inert so their states keep existing and receiving props
// without firing callbacks; during Draw they are also suppressed so they
// emit no geometry.
func expandTemplates[S any](c Context[S], active int, v View, variants ...Template) Context[S] {
	for i, tpl := range variants {
		t := NewTree()
		root := tpl(t, v)
		if i == active {
			c = Build(t, c, root)
			continue
		}
		suppressed, inert := c.suppressed, c.inert
		inactive := c.setInert(true)
		if c.Phase() == PhaseDraw {
			inactive = inactive.suppress(true)
		}
		c = Build(t, inactive, root).suppress(suppressed).setInert(inert)
	}
	return c
}
