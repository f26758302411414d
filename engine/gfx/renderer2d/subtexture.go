package renderer2d

import "github.com/hubastard/foam/engine/core"

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
// The texture may be nil while the atlas is still being packed.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	return SubTexture2D{
		Texture: tex,
		U0:      float32(x) / float32(atlasW),
		V0:      float32(y) / float32(atlasH),
		U1:      float32(x+w) / float32(atlasW),
		V1:      float32(y+h) / float32(atlasH),
	}
}

// Rect returns the instance uv attribute: origin plus extent.
func (s SubTexture2D) Rect() [4]float32 {
	return [4]float32{s.U0, s.V0, s.U1 - s.U0, s.V1 - s.V0}
}
