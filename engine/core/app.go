package core

import "github.com/hubastard/foam/engine/colors"

// Window abstraction. The host owns the OS window and the GL context.
type Window interface {
	// WaitEvent blocks until the next input event arrives.
	WaitEvent() Event
	SwapBuffers()
	FramebufferSize() (int, int)
	SetTitle(title string)
	Close()
}

// Renderer abstraction: the primitives the batcher writes into.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	CreateTexture(desc TextureDesc) (Texture, error)
	// UploadInstances replaces the per-instance buffer with data holding count instances.
	UploadInstances(data []byte, count int) error
	// DrawInstances issues one instanced draw of the shared quad mesh.
	DrawInstances(count int, vp [16]float32, atlas Texture)
	Shutdown()
}

// Texture is an opaque backend handle.
type Texture interface{ ID() uint32 }

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureAlpha8
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	Linear        bool
}

// Event model: one event drives one frame.
type Event interface{ isEvent() }

type EventQuit struct{}

func (EventQuit) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
}

func (EventMouseButton) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventChar carries one typed character.
type EventChar struct{ Rune rune }

func (EventChar) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
