package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/scratch/integration/tcellinput"
)

const halfBlock = '▀'

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x5B, 0x48, 0x9C)).Bold(true)
	winStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(0xFD, 0xE0, 0x47)).Bold(true)
	loseStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x4B, 0x55, 0x63))
	placeholder = tcell.NewRGBColor(0x37, 0x41, 0x51)
)

// cardArea centers a card of cols x rows cells on a screen of w x h cells.
func cardArea(w, h, cols, rows int) image.Rectangle {
	x := max((w-cols)/2, 0)
	y := max((h-rows)/2, 0)
	return image.Rect(x, y, x+cols, y+rows)
}

// drawCard paints img over the translator's area, two pixel rows per cell.
func drawCard(s tcell.Screen, tr *tcellinput.Translator, img image.Image) {
	area := tr.Area()
	cw, ch := tr.CellSize()
	b := img.Bounds()
	for row := area.Min.Y; row < area.Max.Y; row++ {
		fy := float64(row - area.Min.Y)
		top := clampInt(int((fy+0.25)*ch), b.Min.Y, b.Max.Y-1)
		bottom := clampInt(int((fy+0.75)*ch), b.Min.Y, b.Max.Y-1)
		for col := area.Min.X; col < area.Max.X; col++ {
			x := clampInt(int((float64(col-area.Min.X)+0.5)*cw), b.Min.X, b.Max.X-1)
			style := tcell.StyleDefault.
				Foreground(termColor(img.At(x, top))).
				Background(termColor(img.At(x, bottom)))
			s.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

// fillArea paints the whole area with one color.
func fillArea(s tcell.Screen, area image.Rectangle, c tcell.Color) {
	style := tcell.StyleDefault.Background(c)
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawCentered writes text centered on row between x0 and x0+width,
// measuring it by display width. Text wider than the span is truncated.
func drawCentered(s tcell.Screen, row, x0, width int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, width, "…")
	x := x0 + (width-runewidth.StringWidth(text))/2
	for _, r := range text {
		s.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func termColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
