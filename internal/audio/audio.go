package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/solopong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// speakerLock guards streamers the speaker goroutine is reading
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player plays game cues through a single mixer. Cues are rendered once up
// front; replaying a cue that is still sounding restarts it instead of
// stacking a second copy.
type Player struct {
	mu      sync.Locker
	mixer   *beep.Mixer
	cues    map[game.Cue]*beep.Buffer
	playing map[game.Cue]*beep.Ctrl
	enabled bool
}

// NewPlayer renders the cues. The player stays silent until Init succeeds.
func NewPlayer() *Player {
	return newPlayer(speakerLock{})
}

func newPlayer(mu sync.Locker) *Player {
	return &Player{
		mu:    mu,
		mixer: &beep.Mixer{},
		cues: map[game.Cue]*beep.Buffer{
			game.CueHit:  render(hitSound()),
			game.CueMiss: render(missSound()),
		},
		playing: make(map[game.Cue]*beep.Ctrl),
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	if p.enabled {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	p.mixer.Clear()
	p.mu.Unlock()
	speaker.Close()
	p.enabled = false
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play starts a cue from the beginning. It never blocks on playback.
func (p *Player) Play(c game.Cue) {
	if !p.enabled {
		return
	}
	buf, ok := p.cues[c]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// A nil streamer drains the old Ctrl, so the mixer drops it
	if prev := p.playing[c]; prev != nil {
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	p.playing[c] = ctrl
	p.mixer.Add(ctrl)
}

func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// hitSound is a short high square blip
func hitSound() beep.Streamer {
	return squareWave(880, 50*time.Millisecond)
}

// missSound drops from a square blip to a low sine tone
func missSound() beep.Streamer {
	blip := squareWave(440, 80*time.Millisecond)

	sine, err := generators.SineTone(sampleRate, 196)
	if err != nil {
		return blip
	}
	low := &effects.Gain{
		Streamer: beep.Take(sampleRate.N(180*time.Millisecond), sine),
		Gain:     -0.7,
	}
	return beep.Seq(blip, low)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if numSamples <= 0 {
			return 0, false
		}
		for i := range samples {
			if numSamples <= 0 {
				return i, true
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
