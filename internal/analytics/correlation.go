package analytics

import (
	"fmt"
	"math"
)

// Correlation computes the Pearson product-moment correlation coefficient
// of two aligned series. Both series must have the same length and must
// come from buckets produced with identical interval and day filters; a
// length mismatch is a contract violation. Zero variance in either series
// is a defined degenerate case and yields exactly 0, never NaN or Inf.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("series length mismatch: %d vs %d", len(x), len(y))
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	varX := n*sumX2 - sumX*sumX
	varY := n*sumY2 - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return 0, nil
	}

	return (n*sumXY - sumX*sumY) / math.Sqrt(varX*varY), nil
}
