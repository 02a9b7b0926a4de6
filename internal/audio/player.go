package audio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/circle-collisions/internal/config"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

var format = beep.Format{
	SampleRate:  beep.SampleRate(config.SampleRate),
	NumChannels: 2,
	Precision:   2,
}

// Player plays a short sound each time circles are popped. All sounds go
// through one mixer so overlapping pops are summed.
type Player struct {
	mixer *beep.Mixer
	tap   *levelTap
	pop   *beep.Buffer
	level float64
}

// NewPlayer initialises the speaker and starts the mixer. The pop sound is
// a synthesised blip until LoadFile replaces it.
func NewPlayer() (*Player, error) {
	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	p := &Player{
		mixer: &beep.Mixer{},
		pop:   Blip(config.PopFrequency, config.PopDurationMs*time.Millisecond, config.PopVolume),
	}
	p.tap = newLevelTap(p.mixer, config.LevelRingSize)
	speaker.Play(p.tap)
	return p, nil
}

// Pop starts one copy of the current pop sound.
func (p *Player) Pop() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(p.pop.Streamer(0, p.pop.Len()))
	speaker.Unlock()
}

// LoadFile replaces the pop sound with a decoded audio file.
func (p *Player) LoadFile(path string) error {
	if p == nil {
		return errors.New("audio is not initialised")
	}
	buf, err := LoadSound(path)
	if err != nil {
		return err
	}
	speaker.Lock()
	p.pop = buf
	speaker.Unlock()
	return nil
}

// Level returns a smoothed 0..1 loudness of what is currently playing.
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	mag := math.Pow(p.tap.rms(format.SampleRate.N(time.Second/30)), 0.5)
	p.level = config.LevelSmoothing*p.level + (1-config.LevelSmoothing)*mag
	return clamp01(p.level)
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
}

// Blip renders a decaying sine tone into a buffer.
func Blip(freq float64, d time.Duration, volume float64) *beep.Buffer {
	n := format.SampleRate.N(d)
	step := 2 * math.Pi * freq / float64(format.SampleRate)
	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		for k := range samples {
			if i >= n {
				return k, true
			}
			env := 1 - float64(i)/float64(n)
			v := volume * env * math.Sin(step*float64(i))
			samples[k] = [2]float64{v, v}
			i++
		}
		return len(samples), true
	})

	buf := beep.NewBuffer(format)
	buf.Append(tone)
	return buf
}

// LoadSound decodes a wav, mp3 or flac file into memory at the player's
// sample rate.
func LoadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sound")
	}

	var (
		streamer beep.StreamSeekCloser
		fileFmt  beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, fileFmt, err = wav.Decode(f)
	case ".mp3":
		streamer, fileFmt, err = mp3.Decode(f)
	case ".flac":
		streamer, fileFmt, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFmt.SampleRate != format.SampleRate {
		s = beep.Resample(4, fileFmt.SampleRate, format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath.Base(path))
	}
	return buf, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
