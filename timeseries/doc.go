// Package timeseries provides the Series container for observed samples.
//
// A Series pairs float64 values with timestamps and a name. Its summary
// statistics are computed with the moment package, so an empty series has a
// NaN mean and variance and a single observation has zero variance.
//
// # Creating a Series
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
//	series, err := timeseries.NewWithTimestamps(times, values)
//	if errors.Is(err, timeseries.ErrLengthMismatch) {
//	    // ...
//	}
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	sum := series.Summary() // moment.Summary[float64]
//
// For estimates in another precision use the moment package directly:
//
//	mu := moment.Mean[float32](series.Values)
//
// # Slicing and Manipulation
//
//	subset := series.Slice(10, 50)
//	normalized := series.Normalize()
//	copy := series.Copy()
package timeseries
