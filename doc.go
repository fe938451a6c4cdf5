// Package gomoments provides sample mean and variance estimators that are
// generic over the numeric type of the data and the precision of the result.
//
// Integer samples can be summarised as float32 or float64 estimates, and
// float samples can be widened or narrowed, without writing one function per
// type pair. The set of accepted type pairs is fixed by constraints, so an
// unsupported combination fails to compile instead of failing at run time.
//
// # Quick Start
//
//	data := []int32{12, 15, 11, 18, 14}
//	mu := moment.Mean[float64](data)
//	s2 := moment.Variance[float64](data)
//	sd := moment.StdDev[float32](data)
//
// Or all at once:
//
//	sum := moment.Summarize[float64](data)
//	if sum.Valid() {
//	    fmt.Println(sum.Mean, sum.Variance, sum.StdDev)
//	}
//
// # Packages
//
//   - numeric: Real and Convertible constraints and conversion helpers
//   - moment: Mean, Variance, StdDev and Summarize
//   - timeseries: Series container whose statistics use moment
//
// # Degenerate Input
//
// Estimators never return errors. The mean and variance of an empty sample
// are NaN, and the variance of a single observation is exactly zero.
//
// # References
//
//   - Chan, T. F., Golub, G. H., & LeVeque, R. J. (1983). Algorithms for
//     Computing the Sample Variance: Analysis and Recommendations
package gomoments
