package scratch

// DefaultMaxSurfaceCells is the largest surface, in cells, a card allocates.
// It matches the area of a 4096x4096 canvas.
const DefaultMaxSurfaceCells = 4096 * 4096

// Option configures a Card during creation.
// Use functional options to hook presentation callbacks and tune behavior.
//
// Example:
//
//	card, err := scratch.NewCard(cfg,
//	    scratch.WithOnReveal(func() { log.Println("revealed") }),
//	    scratch.WithInputMode(scratch.DetectInputMode(hasTouch)),
//	)
type Option func(*cardOptions)

// cardOptions holds optional configuration for Card creation.
type cardOptions struct {
	hooks       revealHooks
	inputMode   InputMode
	interpolate bool
	estimator   CoverageEstimator
	maxCells    int
	surface     func(width, height int) error
}

// defaultOptions returns the default card options.
func defaultOptions() cardOptions {
	return cardOptions{
		inputMode: InputMouse,
		estimator: CoverageEstimator{Stride: DefaultStride},
		maxCells:  DefaultMaxSurfaceCells,
	}
}

// WithOnReveal sets the zero-argument callback fired exactly once when the
// card reveals. Read Card.IsWinner from inside it to pick the presentation.
func WithOnReveal(fn func()) Option {
	return func(o *cardOptions) {
		o.hooks.onReveal = fn
	}
}

// WithOnWin sets the callback fired on reveal of a winning card.
func WithOnWin(fn func()) Option {
	return func(o *cardOptions) {
		o.hooks.onWin = fn
	}
}

// WithOnLose sets the callback fired on reveal of a losing card.
func WithOnLose(fn func()) Option {
	return func(o *cardOptions) {
		o.hooks.onLose = fn
	}
}

// WithOnOutcome sets a callback receiving the outcome on reveal.
// It runs after the reveal and win/lose callbacks.
func WithOnOutcome(fn func(Outcome)) Option {
	return func(o *cardOptions) {
		o.hooks.onOutcome = fn
	}
}

// WithInputMode binds the card to one input mechanism. The default is
// InputMouse; see DetectInputMode.
func WithInputMode(mode InputMode) Option {
	return func(o *cardOptions) {
		o.inputMode = mode
	}
}

// WithInterpolation makes consecutive points of a gesture erase the whole
// segment between them instead of one disc per point. Useful for hosts
// with sparse motion events, such as terminals.
func WithInterpolation(enabled bool) Option {
	return func(o *cardOptions) {
		o.interpolate = enabled
	}
}

// WithEstimator replaces the default exact coverage estimator.
func WithEstimator(e CoverageEstimator) Option {
	return func(o *cardOptions) {
		o.estimator = e
	}
}

// WithMaxSurfaceCells sets the largest surface area the card will allocate.
// Larger surfaces leave the card unavailable (see ErrSurfaceUnavailable).
func WithMaxSurfaceCells(n int) Option {
	return func(o *cardOptions) {
		o.maxCells = n
	}
}

// WithSurface registers a host hook that prepares the drawing surface.
// If it returns an error the card stays covered and unavailable.
func WithSurface(init func(width, height int) error) Option {
	return func(o *cardOptions) {
		o.surface = init
	}
}
