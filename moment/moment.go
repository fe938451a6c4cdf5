package moment

import "github.com/sartorproj/gomoments/numeric"

// Mean computes an estimate of the population mean from a finite sample.
// It returns NaN when data is empty.
func Mean[R numeric.Real, T numeric.Convertible](data []T) R {
	sum := numeric.Zero[R]()
	for _, x := range data {
		sum += numeric.ToReal[R](x)
	}
	return sum / numeric.FromNatural[R](uint(len(data)))
}

// Variance computes an unbiased estimate of the population variance from a
// finite sample using the compensated two-pass algorithm.
//
// A single observation has variance zero. An empty sample yields NaN.
func Variance[R numeric.Real, T numeric.Convertible](data []T) R {
	if len(data) == 1 {
		return numeric.Zero[R]()
	}
	return variance(data, Mean[R](data))
}

// StdDev computes the square root of Variance.
func StdDev[R numeric.Real, T numeric.Convertible](data []T) R {
	return numeric.Sqrt(Variance[R](data))
}

// variance runs the second pass around a precomputed mean mu.
func variance[R numeric.Real, T numeric.Convertible](data []T, mu R) R {
	n := numeric.FromNatural[R](uint(len(data)))
	sum1, sum2 := numeric.Zero[R](), numeric.Zero[R]()
	for _, x := range data {
		delta := numeric.ToReal[R](x) - mu
		// The conversion rounds the product so it is never fused into an FMA.
		sum1 += R(delta * delta)
		sum2 += delta
	}
	return (sum1 - sum2*sum2/n) / (n - numeric.One[R]())
}
