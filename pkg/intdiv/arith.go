// Package intdiv implements integer division and modulo under every common rounding policy.
//
// Each policy comes as a pair of functions: DivRemXxx returns the quotient together with the
// remainder that satisfies dividend == divisor*Quotient + Remainder, and DivXxx returns only
// the quotient. All functions are pure and work for any signed integer type.
//
// Division by zero panics exactly like the built-in operators. The pair (MinInt, -1) is the only
// other input whose result is not representable; see Overflows.
package intdiv

import "golang.org/x/exp/constraints"

// Result is a quotient and the remainder consistent with it.
type Result[T constraints.Signed] struct {
	Quotient  T
	Remainder T
}

// sign2 is like a signum function, but returns 1 for zero.
func sign2[T constraints.Signed](x T) T {
	if x < 0 {
		return -1
	}
	return 1
}

// quotientNegative reports whether the exact quotient x/y is negative.
func quotientNegative[T constraints.Signed](x, y T) bool {
	return (x ^ y) < 0
}

func b2i[T constraints.Signed](b bool) T {
	if b {
		return 1
	}
	return 0
}

// offsetQuotient returns x/y+d as the quotient, where d is -1, 0 or 1, together with
// the remainder of a division of x by y that would have yielded that quotient.
func offsetQuotient[T constraints.Signed](x, y, d T) Result[T] {
	// The remainder is x%y - d*y. It is evaluated modulo 2^64 on sign-extended operands,
	// so that negating y == MinInt doesn't overflow; truncating back to T is exact
	// because the true remainder always fits.
	return Result[T]{
		Quotient:  x/y + d,
		Remainder: T(uint64(x%y) - uint64(d)*uint64(y)),
	}
}

// magnify moves the truncated quotient one step away from zero if increment is set.
func magnify[T constraints.Signed](x, y T, increment bool) Result[T] {
	return offsetQuotient(x, y, b2i[T](increment)*sign2(x)*sign2(y))
}

// Overflows reports whether x/y is not representable in T. This happens only when x is the
// minimum value of T and y is -1; the built-in operator then wraps to x with a zero remainder,
// and so does every function of this package.
func Overflows[T constraints.Signed](x, y T) bool {
	// -x == x holds for zero and for the minimum value only.
	return y == -1 && x < 0 && x == -x
}
