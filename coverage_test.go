package scratch

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// eraseCells erases the first n cells of m in row-major order, one cell
// at a time.
func eraseCells(m *PixelMask, n int) {
	for i := range n {
		x := i % m.Width()
		y := i / m.Width()
		m.Erase(float64(x)+0.5, float64(y)+0.5, 0.5)
	}
}

func TestCoverageEstimateExact(t *testing.T) {
	tests := []struct {
		erased int
		want   float64
	}{
		{0, 0},
		{1, 0.01},
		{2500, 25},
		{5000, 50},
		{5001, 50.01},
		{10000, 100},
	}
	for _, tt := range tests {
		mask := NewPixelMask(100, 100)
		eraseCells(mask, tt.erased)

		got := CoverageEstimator{}.Estimate(mask)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("erased %d: Estimate() = %v, want %v", tt.erased, got, tt.want)
		}
	}
}

func TestCoverageEstimateHalfIsExactlyFifty(t *testing.T) {
	mask := NewPixelMask(100, 100)
	eraseCells(mask, 5000)

	if got := (CoverageEstimator{Stride: DefaultStride}).Estimate(mask); got != 50 {
		t.Errorf("Estimate() = %v, want exactly 50", got)
	}
}

func TestCoverageEstimateIdempotent(t *testing.T) {
	mask := NewPixelMask(300, 150)
	mask.Erase(100, 60, 25)
	mask.Erase(180, 90, 25)

	for _, est := range []CoverageEstimator{{Stride: 1}, {Stride: 3}, {Stride: 8}} {
		first := est.Estimate(mask)
		second := est.Estimate(mask)
		if math.Float64bits(first) != math.Float64bits(second) {
			t.Errorf("stride %d: Estimate() not idempotent: %v then %v", est.Stride, first, second)
		}
	}
}

func TestCoverageEstimateMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	mask := NewPixelMask(300, 150)
	est := CoverageEstimator{}

	prev := est.Estimate(mask)
	for i := range 500 {
		mask.Erase(rng.Float64()*340-20, rng.Float64()*190-20, 5+rng.Float64()*25)
		got := est.Estimate(mask)
		if got < prev {
			t.Fatalf("step %d: coverage decreased from %v to %v", i, prev, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("step %d: coverage %v outside [0, 100]", i, got)
		}
		prev = got
	}
}

func TestCoverageEstimateStrided(t *testing.T) {
	// A horizontal band of brush stamps: rows 60..89 fully erased, 20% of
	// the card.
	mask := NewPixelMask(300, 150)
	for x := 0.0; x <= 300; x += 5 {
		mask.Erase(x, 75, 15)
	}

	exact := CoverageEstimator{}.Estimate(mask)
	if math.Abs(exact-20) > 1e-9 {
		t.Fatalf("exact coverage = %v, want 20", exact)
	}

	sampled := CoverageEstimator{Stride: 4}.Estimate(mask)
	if math.Abs(sampled-exact) > 2 {
		t.Errorf("stride 4 coverage = %v, exact %v: error above 2 points", sampled, exact)
	}
}

func TestCoverageEstimateClamped(t *testing.T) {
	mask := NewPixelMask(30, 30)
	mask.Erase(15, 15, 1000)

	for _, est := range []CoverageEstimator{{Stride: 1}, {Stride: 7}} {
		if got := est.Estimate(mask); got != 100 {
			t.Errorf("stride %d: Estimate() = %v, want 100", est.Stride, got)
		}
	}
}

func TestScanErasedCoveredView(t *testing.T) {
	view := coveredView{width: 10, height: 10}
	if got := ScanErased(view); got != 0 {
		t.Errorf("ScanErased(covered) = %d, want 0", got)
	}
	if got := (CoverageEstimator{}).Estimate(view); got != 0 {
		t.Errorf("Estimate(covered) = %v, want 0", got)
	}
}

func BenchmarkCoverageEstimate(b *testing.B) {
	mask := NewPixelMask(300, 150)
	mask.Erase(150, 75, 40)

	for _, stride := range []int{1, 4} {
		est := CoverageEstimator{Stride: stride}
		b.Run(fmt.Sprintf("stride=%d", stride), func(b *testing.B) {
			for b.Loop() {
				_ = est.Estimate(mask)
			}
		})
	}
}
