package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/kid-maze/game"
	"github.com/lixenwraith/kid-maze/maze"
)

// Config holds the game's settings
type Config struct {
	Maze  MazeConfig  `toml:"maze"`
	Fog   FogConfig   `toml:"fog"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

type MazeConfig struct {
	Size        int   `toml:"size"`         // Odd, >= 5
	Seed        int64 `toml:"seed"`         // 0 = random per run
	MaxAttempts int   `toml:"max_attempts"` // Regenerations before reporting failure
	SampleSize  int   `toml:"sample_size"`  // Endpoint candidates compared pairwise
}

type FogConfig struct {
	Enabled bool   `toml:"enabled"`
	Radius  int    `toml:"radius"`
	Metric  string `toml:"metric"` // chebyshev | manhattan
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the settings used when no file or env override is present
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Size:        15,
			MaxAttempts: maze.DefaultMaxAttempts,
			SampleSize:  maze.DefaultSampleSize,
		},
		Fog: FogConfig{
			Enabled: true,
			Radius:  game.DefaultFogRadius,
			Metric:  game.Chebyshev.String(),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path (missing file keeps defaults), then .env and environment overrides, then validates
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("[CONFIG] [INFO] %s not found, using defaults", path)
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode fails on unknown keys
func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode renders cfg as TOML, used to write a starter config file
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate rejects settings the maze engine or renderer cannot honor
func (c Config) Validate() error {
	switch {
	case c.Maze.Size < maze.MinSize:
		return fmt.Errorf("maze.size %d: %w", c.Maze.Size, maze.ErrSizeTooSmall)
	case c.Maze.Size%2 == 0:
		return fmt.Errorf("maze.size %d: %w", c.Maze.Size, maze.ErrEvenSize)
	case c.Maze.MaxAttempts <= 0:
		return fmt.Errorf("maze.max_attempts must be positive, got %d", c.Maze.MaxAttempts)
	case c.Maze.SampleSize < 2:
		return fmt.Errorf("maze.sample_size must be at least 2, got %d", c.Maze.SampleSize)
	case c.Fog.Radius < 0:
		return fmt.Errorf("fog.radius must not be negative, got %d", c.Fog.Radius)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if _, err := game.ParseMetric(c.Fog.Metric); err != nil {
		return fmt.Errorf("fog.metric: %w", err)
	}
	return nil
}

// GeneratorConfig maps maze settings onto the engine
func (c Config) GeneratorConfig() maze.Config {
	return maze.Config{
		Seed:        c.Maze.Seed,
		MaxAttempts: c.Maze.MaxAttempts,
		SampleSize:  c.Maze.SampleSize,
	}
}

// GameFog maps fog settings onto the session, Validate must have passed
func (c Config) GameFog() game.Fog {
	metric, _ := game.ParseMetric(c.Fog.Metric)
	return game.Fog{
		Enabled: c.Fog.Enabled,
		Radius:  c.Fog.Radius,
		Metric:  metric,
	}
}
