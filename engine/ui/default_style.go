package ui

import "github.com/hubastard/foam/engine/colors"

var (
	bevelShadow = colors.Hex(0x333333FF)
	captionInk  = colors.Hex(0x222222FF)
)

// DefaultStyle is a flat grey bevel look.
func DefaultStyle() *Style {
	return &Style{
		Button: ButtonStyle{
			Normal:  bevelButton(colors.Hex(0x999999FF), colors.Hex(0xEFEFEFFF), 0),
			Hover:   bevelButton(colors.Hex(0xBBBBBBFF), colors.White, 0),
			Pressed: bevelButton(colors.Hex(0x999999FF), colors.Hex(0xBBBBBBFF), 1),
		},
		TextBox: TextBoxStyle{
			Normal:  textField(colors.Hex(0x999999FF)),
			Hover:   textField(colors.Hex(0x666666FF)),
			Focused: textField(colors.Hex(0x3399FFFF)),
		},
	}
}

// bevelButton draws a drop shadow one pixel taller than the control, a
// border and a face. Pressed buttons sink by shift pixels.
func bevelButton(border, face colors.Color, shift float32) Template {
	return func(t *Tree, v View) Node {
		x, y := v.Position.X(), v.Position.Y()
		w, h := v.Size.X(), v.Size.Y()
		return t.Rectangle(
			Size(w, h+1), Position(x, y), Color(bevelShadow),
			t.Rectangle(Size(w, h), Position(x, y+shift), Color(border)),
			t.Rectangle(Size(w-2, h-2), Position(x+1, y+1+shift), Color(face)),
			t.Text(
				Size(w, h), Position(x, y+shift),
				Text(v.Text), Color(captionInk),
				Alignment(AlignHCenter|AlignVCenter),
			),
		)
	}
}

func textField(border colors.Color) Template {
	return func(t *Tree, v View) Node {
		x, y := v.Position.X(), v.Position.Y()
		w, h := v.Size.X(), v.Size.Y()
		return t.Rectangle(
			Size(w, h), Position(x, y), Color(border),
			t.Rectangle(Size(w-2, h-2), Position(x+1, y+1), Color(colors.White)),
			t.Text(
				Size(w-8, h), Position(x+4, y),
				Text(v.Text), Color(captionInk),
				Alignment(AlignLeft|AlignVCenter),
			),
		)
	}
}
