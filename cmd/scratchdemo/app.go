package main

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/chime"
	"github.com/gogpu/scratch/integration/tcellinput"
	"github.com/gogpu/scratch/render"
)

// settings are the card parameters taken from the command line.
type settings struct {
	width, height int
	brush         float64
	threshold     float64
	cellW, cellH  float64
	interpolate   bool
}

// dealt carries a dealer result back to the event loop.
type dealt struct {
	ticket ticket
	err    error
}

// app hosts one card at a time in a terminal.
type app struct {
	screen tcell.Screen
	set    settings
	dealer *dealer
	player *chime.Player

	card    *scratch.Card
	canvas  *render.Canvas
	tr      *tcellinput.Translator
	loading bool
	rounds  int
}

// run processes events until the user quits or ctx ends.
func (a *app) run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.deal(ctx)
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			more, err := a.handle(ctx, ev)
			if err != nil || !more {
				return err
			}
			a.draw()
		}
	}
}

// deal starts fetching the next card. The result arrives as an interrupt.
func (a *app) deal(ctx context.Context) {
	a.loading = true
	go func() {
		t, err := a.dealer.deal(ctx)
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(dealt{ticket: t, err: err}))
	}()
}

func (a *app) handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false, nil
		case ev.Rune() == 'n' && a.canDeal():
			a.deal(ctx)
		}

	case *tcell.EventMouse:
		if a.tr == nil || a.loading {
			return true, nil
		}
		if sev, ok := a.tr.Translate(ev); ok {
			a.card.HandleEvent(sev)
		}

	case *tcell.EventInterrupt:
		d, ok := ev.Data().(dealt)
		if !ok {
			return true, nil
		}
		if d.err != nil {
			if ctx.Err() != nil {
				return false, nil
			}
			return false, d.err
		}
		if err := a.newCard(d.ticket); err != nil {
			return false, err
		}
	}
	return true, nil
}

// canDeal reports whether a new round may start: only once the current
// card has been revealed.
func (a *app) canDeal() bool {
	return !a.loading && a.card != nil && a.card.Revealed()
}

func (a *app) newCard(t ticket) error {
	cfg := scratch.DefaultConfig()
	cfg.Width, cfg.Height = a.set.width, a.set.height
	cfg.BrushRadius = a.set.brush
	cfg.RevealThreshold = a.set.threshold
	cfg.IsWinner = t.winner
	cfg.PrizeLabel = t.prize

	card, err := scratch.NewCard(cfg,
		scratch.WithInterpolation(a.set.interpolate),
		scratch.WithOnOutcome(a.player.Play),
	)
	if err != nil {
		return err
	}
	canvas, err := render.New(card)
	if err != nil {
		return err
	}

	a.card, a.canvas = card, canvas
	a.loading = false
	a.rounds++
	a.layout()
	return nil
}

// layout places the card in the middle of the screen.
func (a *app) layout() {
	if a.card == nil {
		return
	}
	w, h := a.screen.Size()
	cols := int(math.Ceil(float64(a.set.width) / a.set.cellW))
	rows := int(math.Ceil(float64(a.set.height) / a.set.cellH))
	area := cardArea(w, h, cols, rows)
	if a.tr == nil {
		a.tr = tcellinput.NewTranslator(area, a.set.width, a.set.height)
		return
	}
	a.tr.SetArea(area)
}

func (a *app) draw() {
	a.screen.Clear()
	w, _ := a.screen.Size()

	if a.tr == nil {
		drawCentered(a.screen, 1, 0, w, "Loading new card...", textStyle)
		a.screen.Show()
		return
	}

	area := a.tr.Area()
	mid := area.Min.Y + area.Dy()/2
	drawCentered(a.screen, max(area.Min.Y-2, 0), 0, w, fmt.Sprintf("Scratch card #%d", a.rounds), textStyle)

	switch {
	case a.loading:
		fillArea(a.screen, area, placeholder)
		drawCentered(a.screen, mid, area.Min.X, area.Dx(), "Loading new card...", textStyle)
	case a.card.Revealed():
		drawCard(a.screen, a.tr, a.canvas.Prize())
	default:
		drawCard(a.screen, a.tr, a.canvas.Image())
		if a.card.State() == scratch.StateCovered && !a.card.GestureActive() {
			drawCentered(a.screen, mid, area.Min.X, area.Dx(), " Scratch to reveal ", hintStyle)
		}
	}

	a.drawFooter(area.Max.Y+1, w)
	a.screen.Show()
}

func (a *app) drawFooter(row, w int) {
	if a.loading {
		return
	}
	if a.card.Revealed() {
		if a.card.IsWinner() {
			drawCentered(a.screen, row, 0, w, fmt.Sprintf(" You won %s! ", a.card.PrizeLabel()), winStyle)
		} else {
			drawCentered(a.screen, row, 0, w, " No win this time ", loseStyle)
		}
		drawCentered(a.screen, row+1, 0, w, "n: new card   q: quit", dimStyle)
		return
	}
	drawCentered(a.screen, row, 0, w, fmt.Sprintf("%.0f%% scratched   q: quit", a.card.Coverage()), dimStyle)
}
