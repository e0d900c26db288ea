package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvSize        = "KIDMAZE_SIZE"
	EnvSeed        = "KIDMAZE_SEED"
	EnvFog         = "KIDMAZE_FOG"
	EnvFogRadius   = "KIDMAZE_FOG_RADIUS"
	EnvFogMetric   = "KIDMAZE_FOG_METRIC"
	EnvAudio       = "KIDMAZE_AUDIO"
	EnvAudioVolume = "KIDMAZE_AUDIO_VOLUME"
	EnvDebug       = "KIDMAZE_DEBUG"
	EnvLogDir      = "KIDMAZE_LOG_DIR"
)

// applyEnv overrides cfg from the environment, malformed values are errors
func applyEnv(cfg *Config) error {
	var err error
	set := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	set(envInt(EnvSize, &cfg.Maze.Size))
	set(envInt64(EnvSeed, &cfg.Maze.Seed))
	set(envBool(EnvFog, &cfg.Fog.Enabled))
	set(envInt(EnvFogRadius, &cfg.Fog.Radius))
	envString(EnvFogMetric, &cfg.Fog.Metric)
	set(envBool(EnvAudio, &cfg.Audio.Enabled))
	set(envFloat(EnvAudioVolume, &cfg.Audio.Volume))
	set(envBool(EnvDebug, &cfg.Log.Debug))
	envString(EnvLogDir, &cfg.Log.Dir)

	return err
}

func envString(key string, dst *string) {
	if value, exists := os.LookupEnv(key); exists {
		*dst = value
	}
}

func envInt(key string, dst *int) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = v
	return nil
}

func envInt64(key string, dst *int64) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = v
	return nil
}

func envFloat(key string, dst *float64) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	*dst = v
	return nil
}
