package chime

import (
	"errors"
	"io"
	"time"

	"github.com/gogpu/scratch"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Note timings.
const (
	winNote1   = 80 * time.Millisecond
	winNote2   = 280 * time.Millisecond
	loseNote1  = 140 * time.Millisecond
	loseNote2  = 320 * time.Millisecond
	attack     = 5 * time.Millisecond
	release1   = 40 * time.Millisecond
	release2   = 200 * time.Millisecond
	loseVoiced = 0.6
)

// Pitches in Hz.
const (
	noteB5 = 987.77
	noteE6 = 1318.51
	noteG3 = 196.00
	noteC3 = 130.81
)

// Duration returns how long the chime for o lasts.
func Duration(o scratch.Outcome) time.Duration {
	if o == scratch.OutcomeWin {
		return winNote1 + winNote2
	}
	return loseNote1 + loseNote2
}

// For returns the chime announcing o: a rising two-note coin for a win and
// a falling buzz for a loss. A disabled config yields an empty stream.
func For(o scratch.Outcome, cfg Config) beep.Streamer {
	if !cfg.Enabled {
		return beep.Silence(0)
	}
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	if o == scratch.OutcomeWin {
		s = beep.Seq(
			note(noteB5, winNote1, release1, waveSquare, rate),
			note(noteE6, winNote2, release2, waveSquare, rate),
		)
	} else {
		s = gain(beep.Seq(
			note(noteG3, loseNote1, release1, waveSaw, rate),
			note(noteC3, loseNote2, release2, waveSaw, rate),
		), loseVoiced)
	}
	return gain(s, clamp01(cfg.Volume))
}

func note(freq float64, d, rel time.Duration, shape wave, rate beep.SampleRate) beep.Streamer {
	return newRamp(newTone(freq, d, shape, rate), d, attack, rel, rate)
}

// WriteWAV encodes s as 16-bit stereo WAV at the config's sample rate.
func WriteWAV(w io.WriteSeeker, s beep.Streamer, cfg Config) error {
	if cfg.SampleRate <= 0 {
		return errors.New("chime: sample rate must be positive")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	return wav.Encode(w, s, format)
}
