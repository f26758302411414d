package renderer2d

import (
	"errors"
	"testing"

	"github.com/hubastard/foam/engine/colors"
	"github.com/hubastard/foam/engine/core"
)

type fakeRenderer struct {
	uploads   [][]byte
	draws     []int
	uploadErr error
}

func (f *fakeRenderer) Resize(int, int)      {}
func (f *fakeRenderer) Clear(colors.Color)   {}
func (f *fakeRenderer) Shutdown()            {}
func (f *fakeRenderer) CreateTexture(core.TextureDesc) (core.Texture, error) {
	return nil, nil
}

func (f *fakeRenderer) UploadInstances(data []byte, count int) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, append([]byte(nil), data...))
	return nil
}

func (f *fakeRenderer) DrawInstances(count int, _ [16]float32, _ core.Texture) {
	f.draws = append(f.draws, count)
}

// fakeBatch encodes n instances of 4 bytes, each filled with seed.
type fakeBatch struct {
	n     int
	seed  byte
	calls *int
}

func (b fakeBatch) Len() int { return b.n }

func (b fakeBatch) Bytes() []byte {
	if b.calls != nil {
		*b.calls++
	}
	out := make([]byte, b.n*4)
	for i := range out {
		out[i] = b.seed
	}
	return out
}

func TestSubmit_OneDrawCallPerFrame(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 100)

	rd.BeginScene([16]float32{})
	if err := rd.Submit(fakeBatch{n: 12, seed: 1}); err != nil {
		t.Fatal(err)
	}
	rd.EndScene()

	st := rd.Stats()
	if st.DrawCalls != 1 || st.InstanceCount != 12 || st.Uploads != 1 {
		t.Errorf("Stats() = %+v, want 1 draw, 12 instances, 1 upload", st)
	}
	if len(fr.draws) != 1 || fr.draws[0] != 12 {
		t.Errorf("draws = %v, want [12]", fr.draws)
	}
}

func TestSubmit_SkipsUnchangedUpload(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 100)

	for i := 0; i < 3; i++ {
		rd.BeginScene([16]float32{})
		if err := rd.Submit(fakeBatch{n: 4, seed: 42}); err != nil {
			t.Fatal(err)
		}
	}
	if len(fr.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(fr.uploads))
	}
	if len(fr.draws) != 3 {
		t.Errorf("draws = %d, want 3", len(fr.draws))
	}

	rd.BeginScene([16]float32{})
	if err := rd.Submit(fakeBatch{n: 4, seed: 43}); err != nil {
		t.Fatal(err)
	}
	if len(fr.uploads) != 2 {
		t.Errorf("uploads after change = %d, want 2", len(fr.uploads))
	}
}

func TestSubmit_EncodesBatchOnce(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 100)

	calls := 0
	for i := 0; i < 2; i++ {
		rd.BeginScene([16]float32{})
		if err := rd.Submit(fakeBatch{n: 4, seed: 5, calls: &calls}); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("Bytes() called %d times over 2 frames, want 2", calls)
	}
	if len(fr.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(fr.uploads))
	}
}

// Only the uploaded prefix counts toward change detection.
func TestSubmit_ChangePastCapacityIsIgnored(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 2)

	first := fakeBatch{n: 3, seed: 1}
	rd.BeginScene([16]float32{})
	if err := rd.Submit(first); err != nil {
		t.Fatal(err)
	}
	rd.BeginScene([16]float32{})
	if err := rd.Submit(tailChanged{first}); err != nil {
		t.Fatal(err)
	}
	if len(fr.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(fr.uploads))
	}
}

type tailChanged struct{ fakeBatch }

func (b tailChanged) Bytes() []byte {
	out := b.fakeBatch.Bytes()
	out[len(out)-1] ^= 0xFF
	return out
}

func TestSubmit_EmptyBatchDrawsNothing(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 100)
	rd.BeginScene([16]float32{})
	if err := rd.Submit(fakeBatch{}); err != nil {
		t.Fatal(err)
	}
	if len(fr.draws) != 0 || rd.Stats().DrawCalls != 0 {
		t.Errorf("empty batch issued %d draws", len(fr.draws))
	}
}

func TestSubmit_TruncatesAtCapacity(t *testing.T) {
	fr := &fakeRenderer{}
	rd := New(fr, nil, 3)
	rd.BeginScene([16]float32{})
	if err := rd.Submit(fakeBatch{n: 5, seed: 7}); err != nil {
		t.Fatal(err)
	}
	if got := len(fr.uploads[0]); got != 12 {
		t.Errorf("uploaded %d bytes, want 12", got)
	}
	if st := rd.Stats(); st.Dropped != 2 || st.InstanceCount != 3 {
		t.Errorf("Stats() = %+v, want 2 dropped, 3 drawn", st)
	}
}

func TestSubmit_UploadErrorForcesRetry(t *testing.T) {
	fr := &fakeRenderer{uploadErr: errors.New("lost context")}
	rd := New(fr, nil, 10)
	rd.BeginScene([16]float32{})
	if err := rd.Submit(fakeBatch{n: 1, seed: 9}); err == nil {
		t.Fatal("Submit() error = nil, want upload error")
	}
	fr.uploadErr = nil
	if err := rd.Submit(fakeBatch{n: 1, seed: 9}); err != nil {
		t.Fatal(err)
	}
	if len(fr.uploads) != 1 {
		t.Errorf("uploads = %d, want 1 after retry", len(fr.uploads))
	}
}

func TestFromPixels_Rect(t *testing.T) {
	s := FromPixels(nil, 64, 32, 16, 8, 256, 128)
	want := [4]float32{0.25, 0.25, 0.0625, 0.0625}
	if got := s.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}
