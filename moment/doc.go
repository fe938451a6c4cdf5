// Package moment estimates the first two moments of a population from a
// finite sample.
//
// Every estimator is generic over the element type T of the sample and the
// real type R of the result, so integer data can be summarised in either
// float width:
//
//	temps := []int16{21, 23, 19, 22}
//	mu := moment.Mean[float64](temps)
//	s2 := moment.Variance[float32](temps)
//
// # Variance
//
// Variance returns the unbiased estimate computed with the compensated
// two-pass algorithm. The first pass finds the mean; the second sums the
// squared deviations together with the plain deviations, whose sum corrects
// the round-off left in the mean:
//
//	s2 = (sum(d_i^2) - sum(d_i)^2 / n) / (n - 1),  d_i = x_i - mean
//
// # Degenerate Samples
//
// An empty sample has no defined moments. Mean and Variance return NaN, the
// IEEE result of 0/0, instead of an error. A sample with a single element has
// a Variance of exactly zero. Callers that may pass empty data should test
// the result with math.IsNaN or use Summary.Valid:
//
//	sum := moment.Summarize[float64](data)
//	if !sum.Valid() {
//	    // empty sample
//	}
package moment
