package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			// beep allows ok == false only with n == 0: report the partial buffer now, drain on the next call
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			// Same drain rule as the oscillator
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateStepSound generates a soft tick for each move
func CreateStepSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(660.0, StepSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, StepSoundDuration, StepSoundAttack, StepSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundStep]*cfg.MasterVolume)
}

// CreateBumpSound generates a dull thud for walking into a wall
func CreateBumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(110.0, BumpSoundDuration, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, BumpSoundDuration, BumpSoundAttack, BumpSoundRelease, rate)

	noise := NewOscillator(0, BumpSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, BumpSoundDuration, BumpSoundAttack, BumpSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.8),
		newVolume(noiseShaped, 0.2),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundBump]*cfg.MasterVolume)
}

// CreateVictorySound generates an ascending arpeggio
func CreateVictorySound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(victoryNotes))
	for _, freq := range victoryNotes {
		osc := NewOscillator(freq, VictoryNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, VictoryNoteDuration, VictoryNoteAttack, VictoryNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundVictory]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundStep:
		return CreateStepSound(cfg)
	case SoundBump:
		return CreateBumpSound(cfg)
	case SoundVictory:
		return CreateVictorySound(cfg)
	default:
		return nil
	}
}
