// Package sound plays the short chime that marks a catch.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeFreq     = 880.0 // A5
	chimeOvertone = 1320.0
	chimeDuration = 180 * time.Millisecond
)

// Chime plays a short bell sound on every score change.
// The zero value is silent until Init succeeds.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewChime creates a chime at the given volume in [0, 1].
func NewChime(volume float64) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Init opens the audio device.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one chime. Does nothing before Init.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.volume == 0 {
		return
	}

	ding := NewDingGenerator(sampleRate, chimeFreq, chimeDuration)
	vol := &effects.Volume{Streamer: ding, Base: 2, Volume: math.Log2(c.volume)}

	speaker.Lock()
	c.mixer.Add(vol)
	speaker.Unlock()
}

// Close stops all queued sounds.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// DingGenerator streams a decaying two-partial bell tone of fixed length.
type DingGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewDingGenerator creates a bell tone generator.
func NewDingGenerator(sr beep.SampleRate, freq float64, d time.Duration) *DingGenerator {
	return &DingGenerator{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
	}
}

// Stream implements beep.Streamer.
func (g *DingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) +
			0.25*math.Sin(2*math.Pi*chimeOvertone*t)

		// Short attack then exponential decay to silence
		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-6 * float64(g.pos) / float64(g.total))
		sample *= attack * decay * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *DingGenerator) Err() error {
	return nil
}
