// Package scratch implements the reveal engine of a scratch card.
//
// # Overview
//
// A card is a covered rectangular surface. The player erases the cover with
// a pointer or a finger; once more than the reveal threshold of the surface
// is erased, the card transitions to Revealed and notifies the host exactly
// once. Presentation (prize selection, toasts, confetti, layout) lives
// outside this package and talks to it through Config, a handful of
// callbacks and state queries.
//
// # Quick Start
//
//	import "github.com/gogpu/scratch"
//
//	cfg := scratch.DefaultConfig()
//	cfg.IsWinner = false
//
//	card, err := scratch.NewCard(cfg,
//	    scratch.WithOnReveal(func() { fmt.Println("revealed") }),
//	    scratch.WithInputMode(scratch.DetectInputMode(hasTouch)),
//	)
//	if err != nil {
//	    return err // *scratch.ConfigError
//	}
//
//	// Forward host events; Surface is where the card sits on screen.
//	card.HandleEvent(scratch.Event{Kind: scratch.PointerDown, X: 120, Y: 80, Surface: rect})
//
// # Architecture
//
// Data flows through five parts, leaves first:
//   - PixelMask: the owned W×H opacity grid (255 covered, 0 erased)
//   - Eraser: stamps brush discs into the mask
//   - CoverageEstimator: pure erased-percentage measurement
//   - reveal machine: Covered → Scratching → Revealed behind a one-shot latch
//   - InputNormalizer: pointer/touch events to surface-local scratch points
//
// # Coordinate System
//
// Surface coordinates have their origin at the top-left corner of the card,
// X to the right and Y down, one unit per mask cell. Cell (i, j) covers the
// square [i, i+1)×[j, j+1) and its center is (i+0.5, j+0.5).
//
// # Threading
//
// A card is driven by one event loop. Reveal callbacks run synchronously on
// that loop, from inside ScratchAt or HandleEvent.
package scratch
