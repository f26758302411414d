package scene

import "github.com/go-gl/mathgl/mgl32"

// PixelCamera2D maps window pixels (origin top-left, Y down) to clip space.
type PixelCamera2D struct {
	width, height float32
	vp            mgl32.Mat4
	dirty         bool
}

func NewPixelCamera2D(width, height int) *PixelCamera2D {
	c := &PixelCamera2D{}
	c.SetViewportPixels(width, height)
	return c
}

func (c *PixelCamera2D) SetViewportPixels(w, h int) {
	c.width, c.height = float32(max(w, 1)), float32(max(h, 1))
	c.dirty = true
}

func (c *PixelCamera2D) Width() float32  { return c.width }
func (c *PixelCamera2D) Height() float32 { return c.height }

// VP returns the column-major view-projection matrix.
func (c *PixelCamera2D) VP() [16]float32 {
	if c.dirty {
		c.vp = mgl32.Ortho(0, c.width, c.height, 0, -1, 1)
		c.dirty = false
	}
	return c.vp
}
