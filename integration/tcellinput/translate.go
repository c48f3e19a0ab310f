// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tcellinput

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratch"
)

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Translator converts tcell mouse events over one card into scratch events.
//
// Translator is NOT safe for concurrent use; feed it from the goroutine
// that polls the screen.
type Translator struct {
	area   image.Rectangle
	width  int
	height int
	cellW  float64
	cellH  float64

	held   bool // button 1 was down at the previous event
	inside bool // the previous event was over the card
}

// NewTranslator returns a Translator for a width x height card drawn over
// area, given in terminal cells. An empty area is treated as a single cell.
func NewTranslator(area image.Rectangle, width, height int) *Translator {
	t := &Translator{width: width, height: height}
	t.SetArea(area)
	return t
}

// SetArea moves the card to a new cell rectangle, typically after a resize.
// Any gesture in progress keeps its button state.
func (t *Translator) SetArea(area image.Rectangle) {
	area = area.Canon()
	if area.Empty() {
		area.Max = area.Min.Add(image.Pt(1, 1))
	}
	t.area = area
	t.cellW = float64(t.width) / float64(area.Dx())
	t.cellH = float64(t.height) / float64(area.Dy())
}

// Area returns the card's cell rectangle.
func (t *Translator) Area() image.Rectangle {
	return t.area
}

// CellSize returns how many card pixels one terminal cell covers.
func (t *Translator) CellSize() (w, h float64) {
	return t.cellW, t.cellH
}

// Surface returns the card's placement in the translated pixel space.
func (t *Translator) Surface() scratch.Rect {
	return scratch.Rect{
		X:      float64(t.area.Min.X) * t.cellW,
		Y:      float64(t.area.Min.Y) * t.cellH,
		Width:  float64(t.width),
		Height: float64(t.height),
	}
}

// Translate converts ev. It returns false when the event means nothing to
// the card: wheel events, presses outside it and motion away from it.
func (t *Translator) Translate(ev *tcell.EventMouse) (scratch.Event, bool) {
	buttons := ev.Buttons()
	if buttons&wheelMask != 0 {
		return scratch.Event{}, false
	}

	col, row := ev.Position()
	down := buttons&tcell.Button1 != 0
	in := image.Pt(col, row).In(t.area)

	wasHeld, wasInside := t.held, t.inside
	t.held, t.inside = down, in

	out := scratch.Event{
		X:       (float64(col) + 0.5) * t.cellW,
		Y:       (float64(row) + 0.5) * t.cellH,
		Surface: t.Surface(),
	}

	switch {
	case down && !wasHeld:
		if !in {
			return scratch.Event{}, false
		}
		out.Kind = scratch.PointerDown
	case !down && wasHeld:
		out.Kind = scratch.PointerUp
	case in:
		out.Kind = scratch.PointerMove
	case wasInside:
		out.Kind = scratch.PointerLeave
	default:
		return scratch.Event{}, false
	}
	return out, true
}

// PixelAt returns the card pixel at the center of the terminal cell
// (col, row), and false when the cell is outside the card.
func (t *Translator) PixelAt(col, row int) (image.Point, bool) {
	if !image.Pt(col, row).In(t.area) {
		return image.Point{}, false
	}
	x := int((float64(col-t.area.Min.X) + 0.5) * t.cellW)
	y := int((float64(row-t.area.Min.Y) + 0.5) * t.cellH)
	return image.Pt(x, y), true
}
