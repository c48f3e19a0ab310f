// Package chime synthesizes the short sounds that announce a card's outcome.
//
// The chimes are generated, not sampled: For returns a finite beep.Streamer
// that can be played through a Player or written to disk with WriteWAV.
//
//	card, _ := scratch.NewCard(cfg, scratch.WithOnOutcome(func(o scratch.Outcome) {
//		player.Play(o)
//	}))
package chime
