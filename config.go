package scratch

import "math"

// Defaults of a freshly dealt card.
const (
	DefaultWidth           = 300
	DefaultHeight          = 150
	DefaultBrushRadius     = 15.0
	DefaultRevealThreshold = 50.0
	DefaultPrizeLabel      = "$10.000"
)

// Config is the per-round card configuration supplied by the presentation
// layer. It is copied into the Card at creation and never changes afterwards.
type Config struct {
	// Width and Height of the scratch surface in pixels.
	Width  int
	Height int

	// BrushRadius is the eraser disc radius in pixels.
	BrushRadius float64

	// RevealThreshold is the erased percentage that must be exceeded
	// (strictly) before the card reveals. Valid range is (0, 100].
	RevealThreshold float64

	// IsWinner selects the win or lose signal emitted on reveal.
	IsWinner bool

	// PrizeLabel is shown under the cover of a winning card.
	PrizeLabel string
}

// DefaultConfig returns the configuration of a standard 300x150 card.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		BrushRadius:     DefaultBrushRadius,
		RevealThreshold: DefaultRevealThreshold,
		IsWinner:        true,
		PrizeLabel:      DefaultPrizeLabel,
	}
}

// Validate checks the configuration and returns a *ConfigError for the
// first offending field.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be > 0"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be > 0"}
	}
	if !(c.BrushRadius > 0) || math.IsInf(c.BrushRadius, 0) {
		return &ConfigError{Field: "brush radius", Value: c.BrushRadius, Reason: "must be a finite value > 0"}
	}
	if !(c.RevealThreshold > 0 && c.RevealThreshold <= 100) {
		return &ConfigError{Field: "reveal threshold", Value: c.RevealThreshold, Reason: "must be in (0, 100]"}
	}
	return nil
}
