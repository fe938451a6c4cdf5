package numeric

import "golang.org/x/exp/constraints"

// Signed is the set of signed integer source types.
type Signed interface {
	constraints.Signed
}

// Unsigned is the set of unsigned integer source types.
// uintptr is not a quantity and is left out.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Convertible is the set of source types that can be turned into a Real.
type Convertible interface {
	Signed | Unsigned | constraints.Float
}

// ToReal converts x to R using Go's numeric conversion.
// Integers beyond the mantissa of R are rounded to the nearest representable value.
func ToReal[R Real, T Convertible](x T) R {
	return R(x)
}

// ToRealSlice returns a new slice holding every element of data converted to R.
func ToRealSlice[R Real, T Convertible](data []T) []R {
	out := make([]R, len(data))
	for i, x := range data {
		out[i] = R(x)
	}
	return out
}
