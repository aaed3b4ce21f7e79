// Package audio plays short feedback cues for drawing actions.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Audio errors.
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownCue     = errors.New("unknown cue")
)

// Cue identifies a feedback sound.
type Cue int

const (
	CueStrokeBegin Cue = iota
	CueStrokeEnd
	CueUndo
	CueClear
	CueMaterial
	CueScreenshot
	cueCount
)

var cueNames = [cueCount]string{
	CueStrokeBegin: "begin",
	CueStrokeEnd:   "end",
	CueUndo:        "undo",
	CueClear:       "clear",
	CueMaterial:    "material",
	CueScreenshot:  "screenshot",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// ParseCue returns the cue with the given name.
func ParseCue(name string) (Cue, error) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownCue)
}

// tones are the built-in cue sounds: frequency in Hz and length.
var tones = [cueCount]struct {
	freq     float64
	duration time.Duration
}{
	CueStrokeBegin: {660, 40 * time.Millisecond},
	CueStrokeEnd:   {440, 40 * time.Millisecond},
	CueUndo:        {330, 90 * time.Millisecond},
	CueClear:       {220, 160 * time.Millisecond},
	CueMaterial:    {880, 30 * time.Millisecond},
	CueScreenshot:  {990, 120 * time.Millisecond},
}

// Manager handles cue playback.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	mixer *beep.Mixer
	cues  [cueCount]*beep.Buffer
}

// New creates a manager with the built-in tones loaded.
func New() *Manager {
	m := &Manager{
		sampleRate: DefaultSampleRate,
		volume:     0.5,
		mixer:      &beep.Mixer{},
	}
	for c, t := range tones {
		m.cues[c] = record(m.sampleRate, tone(m.sampleRate, t.freq, t.duration))
	}
	return m
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// LoadCue replaces the sound of c with WAV data.
func (m *Manager) LoadCue(c Cue, data []byte) error {
	if c < 0 || c >= cueCount {
		return fmt.Errorf("%v: %w", c, ErrUnknownCue)
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	buf := record(m.sampleRate, resampled)

	m.mu.Lock()
	m.cues[c] = buf
	m.mu.Unlock()
	return nil
}

// Length returns the duration of cue c.
func (m *Manager) Length(c Cue) time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sampleRate.D(m.cues[c].Len())
}

// Play mixes cue c into the output. Cues may overlap.
func (m *Manager) Play(c Cue) error {
	if c < 0 || c >= cueCount {
		return fmt.Errorf("%v: %w", c, ErrUnknownCue)
	}

	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	buf := m.cues[c]
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	speaker.Lock()
	m.mixer.Add(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   gainExponent(vol),
		Silent:   vol <= 0,
	})
	speaker.Unlock()

	return nil
}

// record buffers a finite streamer as stereo 16-bit audio.
func record(sr beep.SampleRate, s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// tone returns a sine wave of the given length that fades out linearly so
// it does not click when it stops.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * gomath.Pi * freq / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			envelope := 1 - float64(pos)/float64(total)
			v := gomath.Sin(step*float64(pos)) * envelope
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, true
	})
}

// gainExponent converts a 0-1 volume to the effects.Volume exponent for
// base 2.
func gainExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return gomath.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
