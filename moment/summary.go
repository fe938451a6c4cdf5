package moment

import (
	"math"

	"github.com/sartorproj/gomoments/numeric"
)

// Summary holds the moment estimates of a sample.
type Summary[R numeric.Real] struct {
	N        int
	Mean     R
	Variance R
	StdDev   R
}

// Summarize computes Mean, Variance and StdDev of data, sharing the first pass.
func Summarize[R numeric.Real, T numeric.Convertible](data []T) Summary[R] {
	mu := Mean[R](data)
	s2 := numeric.Zero[R]()
	if len(data) != 1 {
		s2 = variance(data, mu)
	}
	return Summary[R]{
		N:        len(data),
		Mean:     mu,
		Variance: s2,
		StdDev:   numeric.Sqrt(s2),
	}
}

// Valid reports whether the sample was non-empty and every estimate is finite.
func (s Summary[R]) Valid() bool {
	return s.N > 0 && finite(s.Mean) && finite(s.Variance)
}

func finite[R numeric.Real](x R) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
