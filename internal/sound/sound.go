// Package sound plays short synthesized effects for game events through the
// system speaker. It is optional: when the audio device cannot be opened the
// game runs silently.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager turns controller events into sound effects. It implements
// snake.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	celebrated  bool // High score chime already played this round
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep offers no way to close the speaker, so
// an emptied mixer is as quiet as it gets.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// OnEvent plays the effect for e, if it has one.
func (sm *SoundManager) OnEvent(e snake.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	st := sm.effect(e)
	if st == nil || !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// effect returns the streamer for e, or nil for silent events. The high score
// chime plays once per round; later records in the same round only get the
// eat blip.
func (sm *SoundManager) effect(e snake.Event) beep.Streamer {
	switch e.Kind {
	case snake.EventStarted, snake.EventReset:
		sm.celebrated = false
	case snake.EventFoodEaten:
		return tone(880, 80*time.Millisecond)
	case snake.EventNewHighScore:
		if sm.celebrated {
			return nil
		}
		sm.celebrated = true
		return beep.Seq(
			tone(660, 60*time.Millisecond),
			tone(880, 60*time.Millisecond),
			tone(1320, 120*time.Millisecond),
		)
	case snake.EventGameOver:
		if e.Outcome == snake.OutcomeBoardFull {
			return beep.Seq(
				tone(523, 120*time.Millisecond),
				tone(659, 120*time.Millisecond),
				tone(784, 120*time.Millisecond),
				tone(1047, 300*time.Millisecond),
			)
		}
		return beep.Take(sampleRate.N(300*time.Millisecond), NewBuzzGenerator(sampleRate, 110))
	}
	return nil
}

func tone(freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq))
}

// ToneGenerator generates a sine tone with a short attack and exponential
// decay, a soft blip.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*12)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		envelope := math.Min(t/0.02, 1.0) * math.Exp(-t*4)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
