package scratch

// DefaultStride is the sampling stride of the default estimator.
// A stride of 1 measures every cell exactly.
const DefaultStride = 1

// CoverageEstimator measures the erased fraction of a mask as a percentage.
//
// With Stride <= 1 the result is exact: it reads the mask's incrementally
// maintained erased count, which always equals ScanErased. With Stride N > 1
// only cells whose x and y are both multiples of N are sampled. That bounds
// the cost to W*H/N² reads per call at the price of an approximation; brush
// strokes wider than a few strides keep the error within a couple of
// percentage points.
//
// Estimate is a pure function of the mask: repeated calls without an
// intervening erase return identical values.
type CoverageEstimator struct {
	Stride int
}

// Estimate returns the erased percentage of m in [0, 100].
func (e CoverageEstimator) Estimate(m MaskView) float64 {
	total := m.Len()
	if total <= 0 {
		return 0
	}
	if e.Stride <= 1 {
		return percent(m.ErasedCount(), total)
	}

	sampled, erased := 0, 0
	for y := 0; y < m.Height(); y += e.Stride {
		for x := 0; x < m.Width(); x += e.Stride {
			sampled++
			if m.Opacity(x, y) < ErasedBelow {
				erased++
			}
		}
	}
	return percent(erased, sampled)
}

// ScanErased counts erased cells by visiting every cell of m.
func ScanErased(m MaskView) int {
	n := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Opacity(x, y) < ErasedBelow {
				n++
			}
		}
	}
	return n
}

func percent(part, total int) float64 {
	if total <= 0 || part <= 0 {
		return 0
	}
	if part >= total {
		return 100
	}
	return float64(part) / float64(total) * 100
}
