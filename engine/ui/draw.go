package ui

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/foam/engine/colors"
)

// InstanceStride is the byte size of one DrawCommand in the instance buffer:
// a column-major mat3, a uv rect and a packed RGBA8 color.
const InstanceStride = (9 + 4 + 1) * 4

// DrawCommand is one textured quad. Matrix maps the unit square onto the
// quad in pixel space; a zero UV rect means an untextured fill.
type DrawCommand struct {
	Matrix mgl32.Mat3
	UV     [4]float32
	Color  uint32
}

// Quad builds the command for an axis-aligned rectangle.
func Quad(pos, size mgl32.Vec2, c colors.Color, uv [4]float32) DrawCommand {
	m := mgl32.Translate2D(pos.X(), pos.Y()).Mul3(mgl32.Scale2D(size.X(), size.Y()))
	return DrawCommand{Matrix: m, UV: uv, Color: c.Pack()}
}

// AppendBytes appends the little-endian instance encoding of d.
func (d DrawCommand) AppendBytes(b []byte) []byte {
	for _, f := range d.Matrix {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	for _, f := range d.UV {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return binary.LittleEndian.AppendUint32(b, d.Color)
}

// Drawable is implemented by control states that can contribute geometry.
type Drawable interface {
	Slot
	DrawCommands() []DrawCommand
}

// Batch is the flat per-frame command list for one instanced draw call.
type Batch struct {
	commands []DrawCommand
}

// Extract concatenates the commands of every drawable slot, outermost
// widget first, so parents paint below their children.
func Extract[S any](s Stack[S]) Batch {
	var out []DrawCommand
	for i := s.Len() - 1; i >= 0; i-- {
		if d, ok := s.At(i).(Drawable); ok {
			out = append(out, d.DrawCommands()...)
		}
	}
	return Batch{commands: out}
}

func (b Batch) Len() int                { return len(b.commands) }
func (b Batch) Commands() []DrawCommand { return b.commands }

// Bytes encodes the batch for upload; len is Len()*InstanceStride.
func (b Batch) Bytes() []byte {
	out := make([]byte, 0, len(b.commands)*InstanceStride)
	for _, c := range b.commands {
		out = c.AppendBytes(out)
	}
	return out
}

// Hash is an FNV-1a digest of the encoded batch.
func (b Batch) Hash() uint64 {
	h := fnv.New64a()
	var buf [InstanceStride]byte
	for _, c := range b.commands {
		h.Write(c.AppendBytes(buf[:0]))
	}
	return h.Sum64()
}
