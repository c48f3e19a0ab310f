package scratch

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewPixelMask(t *testing.T) {
	mask := NewPixelMask(100, 50)
	if mask.Width() != 100 || mask.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", mask.Width(), mask.Height())
	}
	if mask.Len() != 5000 {
		t.Errorf("expected 5000 cells, got %d", mask.Len())
	}

	// All values should be opaque
	for i, v := range mask.Data() {
		if v != Opaque {
			t.Fatalf("cell %d: expected %d, got %d", i, Opaque, v)
		}
	}
	if mask.ErasedCount() != 0 {
		t.Errorf("expected no erased cells, got %d", mask.ErasedCount())
	}
}

func TestPixelMaskOpacityOutOfBounds(t *testing.T) {
	mask := NewPixelMask(100, 100)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"x >= width", 100, 50},
		{"negative y", 50, -1},
		{"y >= height", 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.Opacity(tt.x, tt.y); got != 0 {
				t.Errorf("Opacity(%d, %d) = %d, want 0", tt.x, tt.y, got)
			}
		})
	}
}

func TestPixelMaskBoundsRect(t *testing.T) {
	mask := NewPixelMask(100, 200)
	bounds := mask.Bounds()

	if bounds.Min.X != 0 || bounds.Min.Y != 0 {
		t.Errorf("expected min (0,0), got (%d,%d)", bounds.Min.X, bounds.Min.Y)
	}
	if bounds.Max.X != 100 || bounds.Max.Y != 200 {
		t.Errorf("expected max (100,200), got (%d,%d)", bounds.Max.X, bounds.Max.Y)
	}
}

func TestPixelMaskImage(t *testing.T) {
	mask := NewPixelMask(4, 4)
	mask.Erase(0.5, 0.5, 0.5)

	if mask.ColorModel() != color.AlphaModel {
		t.Error("expected alpha color model")
	}
	if got := mask.At(0, 0); got != (color.Alpha{A: 0}) {
		t.Errorf("At(0, 0) = %v, want transparent", got)
	}
	if got := mask.At(1, 1); got != (color.Alpha{A: 255}) {
		t.Errorf("At(1, 1) = %v, want opaque", got)
	}
}

func TestPixelMaskEraseDisc(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   int
	}{
		{"single cell", 2.5, 3.5, 0.5, 1},
		{"four cells around a corner", 5, 5, 1, 4},
		{"clipped at origin", 0, 0, 2, 3},
		{"zero radius", 5, 5, 0, 0},
		{"negative radius", 5, 5, -3, 0},
		{"NaN radius", 5, 5, math.NaN(), 0},
		{"infinite radius", 5, 5, math.Inf(1), 0},
		{"NaN center", math.NaN(), 5, 3, 0},
		{"infinite center", 5, math.Inf(-1), 3, 0},
		{"far outside", -1000, -1000, 10, 0},
		{"huge coordinate", 1e300, 5, 10, 0},
		{"just outside right edge", 12.5, 5, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := NewPixelMask(10, 10)
			got := mask.Erase(tt.x, tt.y, tt.radius)
			if got != tt.want {
				t.Errorf("Erase(%v, %v, %v) = %d, want %d", tt.x, tt.y, tt.radius, got, tt.want)
			}
			if mask.ErasedCount() != tt.want {
				t.Errorf("ErasedCount() = %d, want %d", mask.ErasedCount(), tt.want)
			}
			if scanned := ScanErased(mask); scanned != tt.want {
				t.Errorf("ScanErased() = %d, want %d", scanned, tt.want)
			}
		})
	}
}

func TestPixelMaskEraseMembership(t *testing.T) {
	mask := NewPixelMask(40, 40)
	cx, cy, r := 17.3, 21.8, 9.6
	mask.Erase(cx, cy, r)

	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			inside := dx*dx+dy*dy <= r*r
			erased := mask.Opacity(x, y) == Transparent
			if inside != erased {
				t.Fatalf("cell (%d,%d): inside=%v erased=%v", x, y, inside, erased)
			}
		}
	}
}

func TestPixelMaskEraseIsIdempotent(t *testing.T) {
	mask := NewPixelMask(50, 50)
	first := mask.Erase(25, 25, 10)
	if first == 0 {
		t.Fatal("expected first erase to clear cells")
	}
	if again := mask.Erase(25, 25, 10); again != 0 {
		t.Errorf("second erase cleared %d cells, want 0", again)
	}
	if mask.ErasedCount() != first {
		t.Errorf("ErasedCount() = %d, want %d", mask.ErasedCount(), first)
	}
}

func TestPixelMaskDiscArea(t *testing.T) {
	// 300x150 card, brush radius 30 at the center.
	mask := NewPixelMask(300, 150)
	n := mask.Erase(150, 75, 30)

	want := math.Pi * 30 * 30
	if math.Abs(float64(n)-want)/want > 0.02 {
		t.Errorf("erased %d cells, want about %.0f", n, want)
	}
}

func TestPixelMaskCountMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mask := NewPixelMask(120, 80)

	for i := range 200 {
		x := rng.Float64()*160 - 20
		y := rng.Float64()*120 - 20
		r := rng.Float64() * 12
		mask.Erase(x, y, r)

		if got, want := mask.ErasedCount(), ScanErased(mask); got != want {
			t.Fatalf("after erase %d: ErasedCount() = %d, ScanErased() = %d", i, got, want)
		}
	}
}

func TestPixelMaskClone(t *testing.T) {
	mask := NewPixelMask(20, 20)
	mask.Erase(5, 5, 3)

	clone := mask.Clone()
	mask.Erase(15, 15, 3)

	if clone.ErasedCount() == mask.ErasedCount() {
		t.Error("clone should not be affected by later erasures")
	}
	if clone.Opacity(15, 15) != Opaque {
		t.Errorf("clone should keep (15,15) covered, got %d", clone.Opacity(15, 15))
	}
	if clone.Opacity(5, 5) != Transparent {
		t.Errorf("clone should keep (5,5) erased, got %d", clone.Opacity(5, 5))
	}
}

func BenchmarkPixelMaskErase(b *testing.B) {
	mask := NewPixelMask(300, 150)
	b.ReportAllocs()
	for b.Loop() {
		mask.Erase(150, 75, 30)
	}
}
