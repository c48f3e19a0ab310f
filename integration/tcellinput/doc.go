// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellinput feeds terminal mouse events into a scratch card.
//
// Terminals report the mouse per cell and only as a button mask snapshot,
// with no separate press, release or leave notifications. Translator keeps
// the previous snapshot and derives those transitions, so a card can be
// scratched in a terminal exactly as it would be with a desktop mouse:
//
//	tr := tcellinput.NewTranslator(area, card.Width(), card.Height())
//	for {
//		switch ev := screen.PollEvent().(type) {
//		case *tcell.EventMouse:
//			if sev, ok := tr.Translate(ev); ok {
//				card.HandleEvent(sev)
//			}
//		}
//	}
//
// # Coordinates
//
// The card occupies a rectangle of terminal cells. Each cell stands for a
// CellWidth x CellHeight block of card pixels, and a mouse event is reported
// at the center of its block.
//
// # Gestures
//
//   - Button 1 going down inside the card is a press.
//   - Motion with button 1 held is a move while inside the card.
//   - The first held motion outside the card is a leave, which ends the gesture.
//   - Button 1 going up is a release.
//
// Wheel events carry no pointer state and are dropped.
package tcellinput
