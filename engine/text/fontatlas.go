package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

// Atlas is a packed white-on-transparent glyph sheet plus its lookup table.
type Atlas struct {
	*StaticTable
	SizePx          float32
	Ascent, Descent float32
	Size            int
	Pixels          []byte // RGBA8, Size x Size
}

// Default builds an atlas from the embedded Go Regular font.
func Default(sizePx float32) (*Atlas, error) {
	return Build(goregular.TTF, sizePx)
}

// LoadTTF reads a TrueType/OpenType file and builds an atlas from it.
func LoadTTF(path string, sizePx float32) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Build(data, sizePx)
}

type measured struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

// Build rasterizes printable Latin-1 runes of the font into a square atlas.
func Build(ttf []byte, sizePx float32) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(m.Descent.Round())
	lineHeight := float32(m.Height.Round())
	if lineHeight < ascent+descent {
		lineHeight = ascent + descent
	}

	var glyphs []measured
	for r := rune(32); r <= 255; r++ {
		if r >= 127 && r < 160 {
			continue
		}
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, measured{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	size, pos, err := pack(glyphs)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	table := NewTable(lineHeight)
	for _, g := range glyphs {
		out := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			out.Offset = ascent - g.by
			out.W, out.H = float32(g.w), float32(g.h)
			out.UV = renderer2d.FromPixels(nil, p.X, p.Y, g.w, g.h, size, size).Rect()
		}
		table.glyphs[g.r] = out
	}

	return &Atlas{
		StaticTable: table,
		SizePx:      sizePx,
		Ascent:      ascent,
		Descent:     descent,
		Size:        size,
		Pixels:      dst.Pix,
	}, nil
}

// pack places glyphs on shelves, doubling the square atlas until all fit.
func pack(glyphs []measured) (int, map[rune]image.Point, error) {
	for size := atlasMinSize; size <= atlasMaxSize; size *= 2 {
		pos := make(map[rune]image.Point, len(glyphs))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, g := range glyphs {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if x+g.w+atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
}

// Upload creates the atlas texture on r.
func (a *Atlas) Upload(r core.Renderer) (core.Texture, error) {
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:  a.Size,
		Height: a.Size,
		Format: core.TextureRGBA8,
		Pixels: a.Pixels,
	})
	if err != nil {
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	return tex, nil
}
