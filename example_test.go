package scratch_test

import (
	"fmt"

	"github.com/gogpu/scratch"
)

func Example() {
	cfg := scratch.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.BrushRadius = 100

	card, err := scratch.NewCard(cfg, scratch.WithOnOutcome(func(o scratch.Outcome) {
		fmt.Println("outcome:", o)
	}))
	if err != nil {
		panic(err)
	}

	card.ScratchAt(5, 5)
	fmt.Println("revealed:", card.Revealed())
	fmt.Printf("coverage: %.0f%%\n", card.Coverage())
	// Output:
	// outcome: Win
	// revealed: true
	// coverage: 100%
}

func ExampleCard_HandleEvent() {
	card, err := scratch.NewCard(scratch.DefaultConfig())
	if err != nil {
		panic(err)
	}

	surface := scratch.Rect{X: 40, Y: 100, Width: 300, Height: 150}
	card.HandleEvent(scratch.Event{Kind: scratch.PointerMove, X: 60, Y: 120, Surface: surface})
	fmt.Println("hover:", card.State())

	card.HandleEvent(scratch.Event{Kind: scratch.PointerDown, X: 60, Y: 120, Surface: surface})
	card.HandleEvent(scratch.Event{Kind: scratch.PointerMove, X: 90, Y: 120, Surface: surface})
	card.HandleEvent(scratch.Event{Kind: scratch.PointerLeave, X: 400, Y: 120, Surface: surface})
	fmt.Println("after drag:", card.State(), card.GestureActive())
	// Output:
	// hover: Covered
	// after drag: Scratching false
}
