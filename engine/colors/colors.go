package colors

type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Paper       = Color{0xEF / 255.0, 0xF0 / 255.0, 0xF1 / 255.0, 1}
	Transparent = Color{}
)

// RGBA8 builds a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Hex builds a color from 0xRRGGBBAA.
func Hex(v uint32) Color {
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Pack returns the color as 4 normalized bytes laid out R,G,B,A in memory
// once written little-endian, which is what the instanced shader reads.
func (c Color) Pack() uint32 {
	return uint32(channel(c[0])) |
		uint32(channel(c[1]))<<8 |
		uint32(channel(c[2]))<<16 |
		uint32(channel(c[3]))<<24
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) Color {
	return RGBA8(uint8(v), uint8(v>>8), uint8(v>>16), uint8(v>>24))
}

func channel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
