package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundStep    SoundType = iota // Player moved one cell
	SoundBump                     // Player walked into a wall
	SoundVictory                  // End cell reached
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundStep:
		return "step"
	case SoundBump:
		return "bump"
	case SoundVictory:
		return "victory"
	}
	return "unknown"
}

// Config holds volume and rate settings for the sound manager
type Config struct {
	SampleRate    int
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns moderate volumes suitable for a children's game
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   48000,
		MasterVolume: 0.6,
		EffectVolumes: [soundTypeCount]float64{
			SoundStep:    0.25,
			SoundBump:    0.5,
			SoundVictory: 0.8,
		},
	}
}

// Effect timings
const (
	StepSoundDuration = 40 * time.Millisecond
	StepSoundAttack   = 5 * time.Millisecond
	StepSoundRelease  = 25 * time.Millisecond

	BumpSoundDuration = 120 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 80 * time.Millisecond

	VictoryNoteDuration = 140 * time.Millisecond
	VictoryNoteAttack   = 10 * time.Millisecond
	VictoryNoteRelease  = 60 * time.Millisecond
)

// Victory arpeggio: C5 E5 G5 C6
var victoryNotes = []float64{523.25, 659.25, 783.99, 1046.50}
