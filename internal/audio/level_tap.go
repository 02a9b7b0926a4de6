package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the HUD can show how loud the removal sounds are.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// rms returns the root mean square of the last n samples, mixed to mono.
func (t *levelTap) rms(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n == 0 {
		return 0
	}
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	var sumSquares float64
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}
	return math.Sqrt(sumSquares / float64(n))
}
