// Package numeric defines the numeric capabilities used by the moment
// estimators.
//
// Two constraints are provided. Real is the set of types that can serve as an
// accumulator and result: the IEEE floating-point widths. Convertible is the
// set of source types whose values can be cast into a Real: every fixed-width
// signed and unsigned integer, the platform int and uint, and both float
// widths.
//
// # Real Numbers
//
// Identities and counts are built with generic helpers:
//
//	zero := numeric.Zero[float32]()
//	one := numeric.One[float64]()
//	n := numeric.FromNatural[float64](uint(len(data)))
//
// # Conversion
//
// ToReal applies the native Go conversion from the source type to the chosen
// real type:
//
//	x := numeric.ToReal[float32](int64(42))
//	xs := numeric.ToRealSlice[float64]([]uint16{1, 2, 3})
//
// Conversions are lossy for integers whose magnitude exceeds the mantissa of
// the target width (2^24 for float32, 2^53 for float64). This is accepted
// rounding, not an error.
//
// Pairs outside Convertible x Real, such as complex128 sources, uintptr
// sources or integer results, are rejected by the compiler.
package numeric
