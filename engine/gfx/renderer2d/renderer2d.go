package renderer2d

import (
	"fmt"
	"hash/fnv"

	"github.com/hubastard/foam/engine/core"
)

// Instances is a flattened per-frame instance buffer.
type Instances interface {
	Len() int
	Bytes() []byte
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls     int
	InstanceCount int
	Uploads       int
	Dropped       int
}

// Renderer2D submits one instance buffer per frame as a single instanced
// draw of the shared unit quad.
type Renderer2D struct {
	r            core.Renderer
	atlas        core.Texture
	maxInstances int

	vp       [16]float32
	lastHash uint64
	uploaded int
	valid    bool

	stats Statistics
}

func New(r core.Renderer, atlas core.Texture, maxInstances int) *Renderer2D {
	if maxInstances <= 0 {
		maxInstances = 10000
	}
	return &Renderer2D{r: r, atlas: atlas, maxInstances: maxInstances}
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
}

// Submit uploads batch unless it is identical to the previous upload, then
// issues one draw call for all of it. Instances past the capacity are
// dropped and counted.
func (rd *Renderer2D) Submit(batch Instances) error {
	n := batch.Len()
	if n == 0 {
		return nil
	}
	data := batch.Bytes()
	if n > rd.maxInstances {
		rd.stats.Dropped = n - rd.maxInstances
		data = data[:len(data)/n*rd.maxInstances]
		n = rd.maxInstances
		core.Logger().Warn("instance buffer full", "dropped", rd.stats.Dropped, "capacity", rd.maxInstances)
	}

	if h := hashBytes(data); !rd.valid || h != rd.lastHash || n != rd.uploaded {
		if err := rd.r.UploadInstances(data, n); err != nil {
			rd.valid = false
			return fmt.Errorf("upload instances: %w", err)
		}
		rd.lastHash, rd.uploaded, rd.valid = h, n, true
		rd.stats.Uploads++
	}

	rd.r.DrawInstances(n, rd.vp, rd.atlas)
	rd.stats.DrawCalls++
	rd.stats.InstanceCount += n
	return nil
}

func hashBytes(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

func (rd *Renderer2D) EndScene() {
	core.Logger().Debug("frame submitted",
		"draw_calls", rd.stats.DrawCalls,
		"instances", rd.stats.InstanceCount,
		"uploads", rd.stats.Uploads)
}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }
