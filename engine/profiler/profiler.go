//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init allocates the scope ring; capacity is the number of open/close
// events kept, oldest dropped first.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring.init(capacity)
}

// Start opens a named scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Now().UnixNano()
	ring.push(event{at: start, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the recorded scopes as a speedscope evented profile to path,
// or to the temp directory when path is empty, and returns the file written.
func Dump(path string) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), "foam.speedscope.json")
	}
	if err := writeSpeedscope(evs, path); err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	return path, nil
}

type event struct {
	at    int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	var from uint64
	if n > r.size {
		from = n - r.size
	}
	out := make([]event, 0, n-from)
	for k := from; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var (
	framesMu sync.Mutex
	frames   []string
	frameIDs = map[string]int{}
)

func intern(name string) int {
	framesMu.Lock()
	defer framesMu.Unlock()
	if id, ok := frameIDs[name]; ok {
		return id
	}
	id := len(frames)
	frameIDs[name] = id
	frames = append(frames, name)
	return id
}

// speedscope evented file format
type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

// balance converts ring events to speedscope events. Closes without a
// matching open (their open fell off the ring) are skipped and scopes
// still open at the end are closed at the last timestamp.
func balance(evs []event) ([]ssEvent, int64) {
	base := evs[0].at
	out := make([]ssEvent, 0, len(evs)+8)
	stack := make([]int, 0, 32)
	var last int64
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

func writeSpeedscope(evs []event, path string) error {
	framesMu.Lock()
	fs := make([]ssFrame, len(frames))
	for i, name := range frames {
		fs[i] = ssFrame{Name: name}
	}
	framesMu.Unlock()

	out, end := balance(evs)
	if len(out) == 0 {
		return errors.New("no balanced events")
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "foam frames",
			Unit:     "microseconds",
			EndValue: end,
			Events:   out,
		}},
		Exporter: "foam-profiler",
		Name:     "foam capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
