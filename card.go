package scratch

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"
)

// Card is one round of the scratch game: a covered surface, its reveal state
// and the input gesture currently scratching it.
//
// A Card never resets. Start a new round by creating a new Card.
//
// Card is NOT safe for concurrent mutation: ScratchAt and HandleEvent must be
// called from a single goroutine (the host's event loop). State, Revealed
// and Coverage may be read from any goroutine.
type Card struct {
	cfg Config

	mask        *PixelMask
	view        MaskView
	eraser      Eraser
	estimator   CoverageEstimator
	machine     *revealMachine
	input       *InputNormalizer
	interpolate bool

	// coverage holds the float64 bits of the last measured percentage.
	coverage atomic.Uint64

	err error
}

// NewCard validates cfg and creates a fully covered card in StateCovered.
//
// An invalid configuration returns a *ConfigError and no card. If the
// surface cannot be set up, NewCard still returns a card: it stays covered,
// ignores all input, never reveals, and reports the cause through Err.
func NewCard(cfg Config, opts ...Option) (*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Card{
		cfg:         cfg,
		eraser:      Eraser{Radius: cfg.BrushRadius},
		estimator:   o.estimator,
		machine:     newRevealMachine(cfg.RevealThreshold, cfg.IsWinner, o.hooks),
		input:       NewInputNormalizer(o.inputMode),
		interpolate: o.interpolate,
	}

	if err := prepareSurface(cfg, o); err != nil {
		c.err = err
		c.view = coveredView{width: cfg.Width, height: cfg.Height}
		Logger().Warn("scratch: surface unavailable, card stays covered",
			"width", cfg.Width, "height", cfg.Height, "err", err)
		return c, nil
	}

	c.mask = NewPixelMask(cfg.Width, cfg.Height)
	c.view = c.mask
	Logger().Debug("scratch: card created",
		"width", cfg.Width, "height", cfg.Height,
		"brush", cfg.BrushRadius, "threshold", cfg.RevealThreshold,
		"input", o.inputMode)
	return c, nil
}

// prepareSurface checks the surface can be allocated and runs the host hook.
func prepareSurface(cfg Config, o cardOptions) error {
	limit := o.maxCells
	if limit <= 0 {
		limit = DefaultMaxSurfaceCells
	}
	if cfg.Width > limit/cfg.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrSurfaceUnavailable, cfg.Width, cfg.Height, limit)
	}
	if o.surface != nil {
		if err := o.surface(cfg.Width, cfg.Height); err != nil {
			return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
		}
	}
	return nil
}

// Config returns the card configuration.
func (c *Card) Config() Config { return c.cfg }

// Width returns the surface width.
func (c *Card) Width() int { return c.cfg.Width }

// Height returns the surface height.
func (c *Card) Height() int { return c.cfg.Height }

// IsWinner reports whether the card carries a prize.
func (c *Card) IsWinner() bool { return c.cfg.IsWinner }

// PrizeLabel returns the prize text under the cover.
func (c *Card) PrizeLabel() string { return c.cfg.PrizeLabel }

// Outcome returns the signal the card emits (or emitted) on reveal.
func (c *Card) Outcome() Outcome { return outcomeOf(c.cfg.IsWinner) }

// Err returns the surface error of an unavailable card, or nil.
func (c *Card) Err() error { return c.err }

// State returns the current reveal state.
func (c *Card) State() RevealState { return c.machine.State() }

// Revealed reports whether the card reached StateRevealed.
func (c *Card) Revealed() bool { return c.machine.State() == StateRevealed }

// GestureActive reports whether an input gesture is scratching right now.
func (c *Card) GestureActive() bool { return c.input.Active() }

// InputMode returns the input mechanism the card is bound to.
func (c *Card) InputMode() InputMode { return c.input.Mode() }

// Coverage returns the erased percentage measured after the last scratch.
func (c *Card) Coverage() float64 {
	return math.Float64frombits(c.coverage.Load())
}

// Mask returns a read-only view of the cover.
func (c *Card) Mask() MaskView { return c.view }

// ScratchAt erases a brush disc centered at surface coordinates (x, y) and
// runs the reveal check. Coordinates outside the surface erase nothing.
func (c *Card) ScratchAt(x, y float64) {
	c.apply(Command{Point: Point{X: x, Y: y}, From: Point{X: x, Y: y}, First: true})
}

// HandleEvent feeds one raw device event through the card's input
// normalizer and applies the resulting scratch command, if any.
func (c *Card) HandleEvent(ev Event) {
	if c.err != nil {
		return
	}
	if cmd, ok := c.input.Handle(ev); ok {
		c.apply(cmd)
	}
}

func (c *Card) apply(cmd Command) {
	if c.err != nil {
		return
	}
	c.machine.scratched()

	if c.interpolate && !cmd.First {
		c.eraser.ScratchSegment(c.mask, cmd.From.X, cmd.From.Y, cmd.X, cmd.Y)
	} else {
		c.eraser.ScratchAt(c.mask, cmd.X, cmd.Y)
	}

	coverage := c.estimator.Estimate(c.mask)
	c.coverage.Store(math.Float64bits(coverage))
	if c.machine.observe(coverage) {
		Logger().Info("scratch: card revealed",
			"coverage", coverage, "threshold", c.cfg.RevealThreshold,
			"outcome", c.machine.outcome)
	}
}

// coveredView stands in for the mask of an unavailable card.
type coveredView struct {
	width, height int
}

func (v coveredView) Width() int              { return v.width }
func (v coveredView) Height() int             { return v.height }
func (v coveredView) ErasedCount() int        { return 0 }
func (v coveredView) Bounds() image.Rectangle { return image.Rect(0, 0, v.width, v.height) }
func (v coveredView) ColorModel() color.Model { return color.AlphaModel }
func (v coveredView) At(x, y int) color.Color { return color.Alpha{A: v.Opacity(x, y)} }
func (v coveredView) Len() int                { return v.width * v.height }

func (v coveredView) Opacity(x, y int) uint8 {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return 0
	}
	return Opaque
}
