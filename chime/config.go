package chime

import (
	"os"
	"strconv"

	"github.com/gogpu/scratch"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled    = "SCRATCH_CHIME_ENABLED"
	EnvVolume     = "SCRATCH_CHIME_VOLUME"
	EnvSampleRate = "SCRATCH_SAMPLE_RATE"
)

// Config controls how the outcome chimes are synthesized.
type Config struct {
	// Enabled turns the chimes on. A disabled config yields silence.
	Enabled bool

	// Volume is the output gain in [0, 1].
	Volume float64

	// SampleRate is the synthesis rate in Hz.
	SampleRate int
}

// DefaultConfig returns the chime defaults: enabled, 70% volume, 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.7,
		SampleRate: 44100,
	}
}

// LoadConfig returns DefaultConfig overridden by the environment.
//
// SCRATCH_CHIME_ENABLED takes a boolean, SCRATCH_CHIME_VOLUME a percentage
// (0-100, clamped) and SCRATCH_SAMPLE_RATE a positive rate in Hz.
// Malformed values are logged and ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		} else {
			ignored(EnvEnabled, v, err)
		}
	}

	if v := os.Getenv(EnvVolume); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			cfg.Volume = clamp01(float64(pct) / 100)
		} else {
			ignored(EnvVolume, v, err)
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			cfg.SampleRate = rate
		} else {
			ignored(EnvSampleRate, v, err)
		}
	}

	return cfg
}

func ignored(key, value string, err error) {
	scratch.Logger().Warn("chime: ignoring environment override",
		"key", key, "value", value, "err", err)
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
