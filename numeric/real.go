package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is a type usable as an accumulator and result of an estimate.
// It is closed under + - * / and has the identities returned by Zero and One.
type Real interface {
	constraints.Float
}

// One returns the multiplicative identity.
func One[R Real]() R {
	return 1
}

// Zero returns the additive identity.
func Zero[R Real]() R {
	return 0
}

// FromNatural converts a count into R.
// FromNatural(0) equals Zero and FromNatural(1) equals One.
func FromNatural[R Real](n uint) R {
	return R(n)
}

// Sqrt returns the square root of x in the width of R.
func Sqrt[R Real](x R) R {
	return R(math.Sqrt(float64(x)))
}
