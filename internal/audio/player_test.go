package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestLevelTapRMS(t *testing.T) {
	tap := newLevelTap(constant(0.5), 64)

	samples := make([][2]float64, 100)
	if n, ok := tap.Stream(samples); n != 100 || !ok {
		t.Fatalf("Stream: n=%d ok=%v", n, ok)
	}
	if got := tap.rms(32); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("rms: got=%f want=0.5", got)
	}
	// Asking for more than the ring holds is clamped.
	if got := tap.rms(1000); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("rms clamped: got=%f want=0.5", got)
	}
}

func TestLevelTapSilentBeforeStreaming(t *testing.T) {
	tap := newLevelTap(constant(1), 16)
	if got := tap.rms(16); got != 0 {
		t.Fatalf("rms of empty ring: got=%f", got)
	}
}

func TestBlipLengthAndDecay(t *testing.T) {
	buf := Blip(440, 100*time.Millisecond, 0.5)
	want := format.SampleRate.N(100 * time.Millisecond)
	if buf.Len() != want {
		t.Fatalf("blip length: got=%d want=%d", buf.Len(), want)
	}

	samples := make([][2]float64, want)
	n, _ := buf.Streamer(0, buf.Len()).Stream(samples)
	if n != want {
		t.Fatalf("streamed %d samples, want %d", n, want)
	}
	var head, tail float64
	for i := 0; i < want/4; i++ {
		head = math.Max(head, math.Abs(samples[i][0]))
		tail = math.Max(tail, math.Abs(samples[want-1-i][0]))
	}
	if head > 0.5+1e-3 || tail >= head {
		t.Fatalf("envelope: head=%f tail=%f", head, tail)
	}
}

func TestLoadSoundWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pop.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	src := Blip(880, 50*time.Millisecond, 0.3)
	if err := wav.Encode(f, src.Streamer(0, src.Len()), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	buf, err := LoadSound(path)
	if err != nil {
		t.Fatalf("LoadSound: %v", err)
	}
	if buf.Len() != src.Len() {
		t.Fatalf("decoded length: got=%d want=%d", buf.Len(), src.Len())
	}
}

func TestLoadSoundRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pop.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSound(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadSoundMissingFile(t *testing.T) {
	if _, err := LoadSound(filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Pop()
	p.Close()
	if p.Level() != 0 {
		t.Fatalf("nil player level must be zero")
	}
}
