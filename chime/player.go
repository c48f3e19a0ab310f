package chime

import (
	"sync"
	"time"

	"github.com/gogpu/scratch"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays outcome chimes on the default audio device.
//
// A Player built from a disabled config never touches the device.
type Player struct {
	cfg Config

	mu    sync.Mutex
	ready bool
}

// NewPlayer opens the audio device when cfg is enabled. An error leaves
// nothing initialized; callers usually carry on without sound.
func NewPlayer(cfg Config) (*Player, error) {
	p := &Player{cfg: cfg}
	if !cfg.Enabled {
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	p.ready = true
	scratch.Logger().Debug("chime: audio device ready", "sample_rate", cfg.SampleRate)
	return p, nil
}

// Play starts the chime for o and returns without waiting for it.
func (p *Player) Play(o scratch.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Play(For(o, p.cfg))
}

// Close releases the audio device. It is safe to call more than once.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}
