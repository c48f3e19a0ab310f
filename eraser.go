package scratch

import "math"

// Eraser stamps circular holes into a PixelMask.
type Eraser struct {
	// Radius of the erase disc in surface pixels.
	Radius float64
}

// ScratchAt erases a disc of the eraser radius centered at (x, y).
// It returns the number of cells newly erased.
func (e Eraser) ScratchAt(m *PixelMask, x, y float64) int {
	return m.Erase(x, y, e.Radius)
}

// ScratchSegment erases discs along the segment from (x0, y0) to (x1, y1),
// both endpoints included, spaced at most Radius/2 apart so the swept area
// has no gaps. It returns the number of cells newly erased.
func (e Eraser) ScratchSegment(m *PixelMask, x0, y0, x1, y1 float64) int {
	if !(e.Radius > 0) {
		return 0
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if !finite(length) {
		// Endpoints still get their own stamp.
		return m.Erase(x0, y0, e.Radius) + m.Erase(x1, y1, e.Radius)
	}

	steps := int(math.Ceil(length / (e.Radius / 2)))
	if steps < 1 {
		steps = 1
	}
	n := 0
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		n += m.Erase(x0+dx*t, y0+dy*t, e.Radius)
	}
	return n
}
