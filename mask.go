package scratch

import (
	"image"
	"image/color"
	"math"
)

// Opacity levels of a mask cell.
const (
	// Opaque is the opacity of an untouched, fully covered cell.
	Opaque uint8 = 255

	// Transparent is the opacity of a fully erased cell.
	Transparent uint8 = 0

	// ErasedBelow is the opacity under which a cell counts as erased.
	ErasedBelow uint8 = 50
)

// MaskView is the read-only face of a PixelMask handed out to presentation
// and to the coverage estimator.
type MaskView interface {
	image.Image

	Width() int
	Height() int

	// Opacity returns the cell value at (x, y), 0 outside the grid.
	Opacity(x, y int) uint8

	// ErasedCount returns the number of cells below ErasedBelow.
	ErasedCount() int

	// Len returns Width*Height.
	Len() int
}

// PixelMask is the opacity buffer covering the card surface.
// Values range from 0 (erased) to 255 (covered).
//
// PixelMask implements image.Image with the alpha color model, so it can be
// passed directly as the mask argument of draw.DrawMask.
type PixelMask struct {
	width  int
	height int
	data   []uint8
	erased int
}

// NewPixelMask creates a width x height mask with every cell Opaque.
func NewPixelMask(width, height int) *PixelMask {
	m := &PixelMask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
	for i := range m.data {
		m.data[i] = Opaque
	}
	return m
}

// Width returns the mask width.
func (m *PixelMask) Width() int { return m.width }

// Height returns the mask height.
func (m *PixelMask) Height() int { return m.height }

// Len returns the number of cells.
func (m *PixelMask) Len() int { return len(m.data) }

// ErasedCount returns the number of cells whose opacity is below ErasedBelow.
// The count is maintained incrementally by Erase.
func (m *PixelMask) ErasedCount() int { return m.erased }

// Opacity returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *PixelMask) Opacity(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *PixelMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements image.Image.
func (m *PixelMask) ColorModel() color.Model {
	return color.AlphaModel
}

// At implements image.Image.
func (m *PixelMask) At(x, y int) color.Color {
	return color.Alpha{A: m.Opacity(x, y)}
}

// Data returns the underlying row-major cell slice.
// Callers must treat it as read-only.
func (m *PixelMask) Data() []uint8 {
	return m.data
}

// Clone creates an independent copy of the mask.
func (m *PixelMask) Clone() *PixelMask {
	clone := &PixelMask{
		width:  m.width,
		height: m.height,
		data:   make([]uint8, len(m.data)),
		erased: m.erased,
	}
	copy(clone.data, m.data)
	return clone
}

// Erase clears every cell whose center lies within radius of (cx, cy) and
// returns how many cells became erased by this call.
//
// Cell (i, j) has its center at (i+0.5, j+0.5). The disc is clipped to the
// grid; a disc entirely outside it, a non-finite center, or a radius <= 0
// erases nothing.
func (m *PixelMask) Erase(cx, cy, radius float64) int {
	if !(radius > 0) || math.IsInf(radius, 0) || !finite(cx) || !finite(cy) {
		return 0
	}
	w, h := float64(m.width), float64(m.height)
	if cx+radius < 0 || cy+radius < 0 || cx-radius > w || cy-radius > h {
		return 0
	}

	x0 := int(math.Max(0, math.Floor(cx-radius-0.5)))
	x1 := int(math.Min(w-1, math.Ceil(cx+radius-0.5)))
	y0 := int(math.Max(0, math.Floor(cy-radius-0.5)))
	y1 := int(math.Min(h-1, math.Ceil(cy+radius-0.5)))

	r2 := radius * radius
	n := 0
	for j := y0; j <= y1; j++ {
		dy := float64(j) + 0.5 - cy
		dy2 := dy * dy
		if dy2 > r2 {
			continue
		}
		row := m.data[j*m.width : (j+1)*m.width]
		for i := x0; i <= x1; i++ {
			dx := float64(i) + 0.5 - cx
			if dx*dx+dy2 > r2 {
				continue
			}
			if row[i] >= ErasedBelow {
				n++
			}
			row[i] = Transparent
		}
	}
	m.erased += n
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
