package glbackend

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/foam/engine/assets"
	"github.com/hubastard/foam/engine/colors"
	"github.com/hubastard/foam/engine/core"
	"github.com/hubastard/foam/engine/ui"
)

// Attribute offsets within one instance: mat3, uv rect, packed RGBA8.
const (
	instanceStride = ui.InstanceStride
	uvOffset       = 9 * 4
	colorOffset    = 13 * 4
	colorSize      = 4
)

type texture struct{ id uint32 }

func (t texture) ID() uint32 { return t.id }

// RendererGL draws every instance of a frame as one unit quad per instance.
type RendererGL struct {
	program  uint32
	vao      uint32
	quadVBO  uint32
	instVBO  uint32
	instCap  int
	locVP    int32
	locAtlas int32
	textures []uint32
	whiteTex uint32
}

func NewRendererGL(_ core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	core.Logger().Info("gl renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"max_instances", cfg.MaxInstances)
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader("quad.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("quad.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.locVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.locAtlas = gl.GetUniformLocation(r.program, gl.Str("uAtlas\x00"))

	// Unit quad as a triangle strip.
	corners := []float32{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, gl.Ptr(corners), gl.STATIC_DRAW)
	// layout(location = 0) in vec2 aCorner;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.GenBuffers(1, &r.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	// layout(location = 1..3) mat3 columns, 4 uv, 5 color
	for col := uint32(0); col < 3; col++ {
		loc := 1 + col
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, instanceStride, uintptr(col*3*4))
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointerWithOffset(4, 4, gl.FLOAT, false, instanceStride, uvOffset)
	gl.VertexAttribDivisor(4, 1)
	gl.EnableVertexAttribArray(5)
	gl.VertexAttribPointerWithOffset(5, colorSize, gl.UNSIGNED_BYTE, true, instanceStride, colorOffset)
	gl.VertexAttribDivisor(5, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// Bound when a draw passes no atlas so the sampler is always complete.
	white, err := r.CreateTexture(core.TextureDesc{Width: 1, Height: 1, Format: core.TextureAlpha8, Pixels: []byte{0xFF}})
	if err != nil {
		return err
	}
	r.whiteTex = white.ID()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if r.instVBO != 0 {
		gl.DeleteBuffers(1, &r.instVBO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("create texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	internal, format, bpp := int32(gl.RGBA8), uint32(gl.RGBA), 4
	if desc.Format == core.TextureAlpha8 {
		internal, format, bpp = gl.R8, gl.RED, 1
	}
	if want := desc.Width * desc.Height * bpp; len(desc.Pixels) != want {
		return nil, fmt.Errorf("create texture: got %d bytes, want %d", len(desc.Pixels), want)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	filter := int32(gl.NEAREST)
	if desc.Linear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if desc.Format == core.TextureAlpha8 {
		// Sample the single channel as alpha.
		swizzle := []int32{gl.ONE, gl.ONE, gl.ONE, gl.RED}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, id)
	return texture{id: id}, nil
}

func (r *RendererGL) UploadInstances(data []byte, count int) error {
	if count < 0 || len(data) != count*instanceStride {
		return fmt.Errorf("upload instances: %d bytes for %d instances", len(data), count)
	}
	if count == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	if count > r.instCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
		r.instCap = count
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return glError(code)
	}
	return nil
}

func (r *RendererGL) DrawInstances(count int, vp [16]float32, atlas core.Texture) {
	if count <= 0 {
		return
	}
	tex := r.whiteTex
	if atlas != nil {
		tex = atlas.ID()
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locVP, 1, false, &vp[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.locAtlas, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(count))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

type glError uint32

func (e glError) Error() string { return fmt.Sprintf("gl error 0x%04X", uint32(e)) }

// --- Shader utilities ---

var errNoSource = errors.New("empty shader source")

func makeShader(src string, shaderType uint32) (uint32, error) {
	if strings.TrimRight(src, "\x00") == "" {
		return 0, errNoSource
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
