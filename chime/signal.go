package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave selects the oscillator shape.
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

// tone is a fixed-length oscillator.
type tone struct {
	freq  float64
	step  float64
	phase float64
	left  int
	shape wave
}

func newTone(freq float64, d time.Duration, shape wave, rate beep.SampleRate) *tone {
	return &tone{
		freq:  freq,
		step:  freq / float64(rate),
		left:  rate.N(d),
		shape: shape,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.left <= 0 {
			return i, i > 0
		}

		var v float64
		switch t.shape {
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0], samples[i][1] = v, v

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.left--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// ramp shapes a streamer with a linear attack and a linear release.
type ramp struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newRamp(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *ramp {
	return &ramp{
		s:       s,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	if r.pos >= r.total {
		return 0, false
	}
	if rest := r.total - r.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = r.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := r.level()
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

// level is the envelope gain at the current position.
func (r *ramp) level() float64 {
	g := 1.0
	if r.attack > 0 && r.pos < r.attack {
		g = float64(r.pos) / float64(r.attack)
	}
	if tail := r.total - r.pos; r.release > 0 && tail < r.release {
		g = math.Min(g, float64(tail)/float64(r.release))
	}
	return g
}

func (r *ramp) Err() error { return r.s.Err() }

// gain scales s linearly by level. effects.Volume works in a log base,
// so a zero level is expressed as Silent.
func gain(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}
