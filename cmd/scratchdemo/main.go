// Command scratchdemo plays scratch cards in a terminal with the mouse.
//
// Press the left button over the card and drag to scratch. Once enough of
// the cover is gone the card reveals; press n for a new one or q to quit.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/chime"
)

func main() {
	var (
		width       = flag.Int("width", scratch.DefaultWidth, "card width in pixels")
		height      = flag.Int("height", scratch.DefaultHeight, "card height in pixels")
		brush       = flag.Float64("brush", scratch.DefaultBrushRadius, "brush radius in pixels")
		threshold   = flag.Float64("threshold", scratch.DefaultRevealThreshold, "reveal threshold in percent")
		cellW       = flag.Float64("cell-w", 10, "card pixels per terminal column")
		cellH       = flag.Float64("cell-h", 10, "card pixels per terminal row")
		interpolate = flag.Bool("interpolate", false, "fill gaps between fast pointer samples")
		pngPath     = flag.String("png", "", "save the last card to this PNG file on exit")
		wavPath     = flag.String("wav", "", "save the last card's chime to this WAV file on exit")
		chimeOn     = flag.Bool("chime", true, "play a chime when a card reveals")
		logPath     = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *cellW <= 0 || *cellH <= 0 {
		log.Fatalf("cell size must be positive, got %vx%v", *cellW, *cellH)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		scratch.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	chimeCfg := chime.LoadConfig()
	chimeCfg.Enabled = chimeCfg.Enabled && *chimeOn
	player, err := chime.NewPlayer(chimeCfg)
	if err != nil {
		scratch.Logger().Warn("audio unavailable, continuing without sound", "err", err)
		chimeCfg.Enabled = false
		player, _ = chime.NewPlayer(chimeCfg)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		screen: screen,
		set: settings{
			width:       *width,
			height:      *height,
			brush:       *brush,
			threshold:   *threshold,
			cellW:       *cellW,
			cellH:       *cellH,
			interpolate: *interpolate,
		},
		dealer: newDealer(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))), //nolint:gosec // game randomness
		player: player,
	}
	runErr := a.run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatalf("Card failed: %v", runErr)
	}

	if err := a.export(*pngPath, *wavPath, chimeCfg); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
}

// export saves the last card and its outcome chime when paths are given.
func (a *app) export(pngPath, wavPath string, cfg chime.Config) error {
	if a.card == nil {
		return nil
	}
	if pngPath != "" {
		if err := a.canvas.SavePNG(pngPath); err != nil {
			return err
		}
		log.Printf("Card saved to %s (%dx%d)\n", pngPath, a.card.Width(), a.card.Height())
	}
	if wavPath != "" {
		f, err := os.Create(wavPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()

		cfg.Enabled = true
		if err := chime.WriteWAV(f, chime.For(a.card.Outcome(), cfg), cfg); err != nil {
			return err
		}
		log.Printf("Chime saved to %s (%v)\n", wavPath, chime.Duration(a.card.Outcome()))
	}
	return nil
}
