// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative values are allowed so
// fixtures can exercise the negative-weight warning.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi). A nil RNG yields lo.
// Panics if hi < lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn: hi=%g < lo=%g", hi, lo))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntUniformWeightFn samples an integer weight uniformly in [lo, hi].
// Small integer ranges produce many equal-cost routes, which is what
// multi-path fixtures want. A nil RNG yields lo. Panics if hi < lo.
func IntUniformWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: IntUniformWeightFn: hi=%d < lo=%d", hi, lo))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
