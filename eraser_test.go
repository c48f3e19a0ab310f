package scratch

import (
	"math"
	"testing"
)

func TestEraserScratchAt(t *testing.T) {
	mask := NewPixelMask(100, 100)
	e := Eraser{Radius: 10}

	n := e.ScratchAt(mask, 50, 50)
	if ref := NewPixelMask(100, 100).Erase(50, 50, 10); n != ref {
		t.Fatalf("ScratchAt erased %d cells, Erase with the brush radius %d", n, ref)
	}
	want := math.Pi * 100
	if math.Abs(float64(n)-want)/want > 0.1 {
		t.Errorf("ScratchAt erased %d cells, want about %.0f", n, want)
	}
}

func TestEraserScratchSegment(t *testing.T) {
	mask := NewPixelMask(300, 150)
	e := Eraser{Radius: 15}

	e.ScratchSegment(mask, 20, 75, 280, 75)

	// Every cell on the segment's center line must be erased.
	for x := 20; x < 280; x++ {
		if mask.Opacity(x, 75) != Transparent {
			t.Fatalf("cell (%d,75) still covered after segment scratch", x)
		}
	}
	// Both endpoints get a full disc.
	if mask.Opacity(5, 75) != Transparent || mask.Opacity(294, 75) != Transparent {
		t.Error("segment endpoints were not stamped with the full brush")
	}
	if mask.Opacity(150, 40) != Opaque {
		t.Error("segment erased cells outside the brush sweep")
	}
}

func TestEraserScratchSegmentZeroLength(t *testing.T) {
	a := NewPixelMask(50, 50)
	b := NewPixelMask(50, 50)
	e := Eraser{Radius: 6}

	na := e.ScratchSegment(a, 25, 25, 25, 25)
	nb := e.ScratchAt(b, 25, 25)
	if na != nb {
		t.Errorf("zero-length segment erased %d cells, single stamp %d", na, nb)
	}
}

func TestEraserNoRadius(t *testing.T) {
	mask := NewPixelMask(10, 10)
	e := Eraser{}
	if n := e.ScratchAt(mask, 5, 5) + e.ScratchSegment(mask, 0, 0, 9, 9); n != 0 {
		t.Errorf("zero-radius eraser cleared %d cells", n)
	}
}
