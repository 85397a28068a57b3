package intdiv

import "golang.org/x/exp/constraints"

// roundHalf rounds x/y to the nearest integer. An exact tie is rounded away from zero unless
// keepTie is set, in which case the truncated quotient is kept.
//
// Doubling the remainder to compare it with |y| may overflow, so the remainder is compared
// with |y/2| instead. Halving drops the bit that tells .5 from .0, but that bit is exactly
// y%2: for even y nothing was lost, and for odd y no exact tie exists, so the threshold is
// raised by one to bias toward truncation.
func roundHalf[T constraints.Signed](x, y T, keepTie bool) Result[T] {
	absRem := x % y * sign2(x)
	absHalf := y / 2 * sign2(y)
	return magnify(x, y, absRem >= absHalf+b2i[T](y%2 != 0 || keepTie))
}

// DivRemTiesToZero rounds to the nearest integer, ties toward zero.
func DivRemTiesToZero[T constraints.Signed](x, y T) Result[T] {
	absRem := x % y * sign2(x)
	absHalf := y / 2 * sign2(y)
	return magnify(x, y, absRem > absHalf)
}

// DivTiesToZero returns only the quotient of DivRemTiesToZero.
func DivTiesToZero[T constraints.Signed](x, y T) T {
	return DivRemTiesToZero(x, y).Quotient
}

// DivRemTiesAwayZero rounds to the nearest integer, ties away from zero.
// This is the usual schoolbook rounding.
func DivRemTiesAwayZero[T constraints.Signed](x, y T) Result[T] {
	return roundHalf(x, y, false)
}

// DivTiesAwayZero returns only the quotient of DivRemTiesAwayZero.
func DivTiesAwayZero[T constraints.Signed](x, y T) T {
	return DivRemTiesAwayZero(x, y).Quotient
}

// DivRemTiesToInf rounds to the nearest integer, ties toward positive infinity.
func DivRemTiesToInf[T constraints.Signed](x, y T) Result[T] {
	return roundHalf(x, y, quotientNegative(x, y))
}

// DivTiesToInf returns only the quotient of DivRemTiesToInf.
func DivTiesToInf[T constraints.Signed](x, y T) T {
	return DivRemTiesToInf(x, y).Quotient
}

// DivRemTiesToNegInf rounds to the nearest integer, ties toward negative infinity.
func DivRemTiesToNegInf[T constraints.Signed](x, y T) Result[T] {
	return roundHalf(x, y, !quotientNegative(x, y))
}

// DivTiesToNegInf returns only the quotient of DivRemTiesToNegInf.
func DivTiesToNegInf[T constraints.Signed](x, y T) T {
	return DivRemTiesToNegInf(x, y).Quotient
}

// DivRemTiesToOdd rounds to the nearest integer, ties to the odd neighbour.
func DivRemTiesToOdd[T constraints.Signed](x, y T) Result[T] {
	return roundHalf(x, y, (x/y)%2 != 0)
}

// DivTiesToOdd returns only the quotient of DivRemTiesToOdd.
func DivTiesToOdd[T constraints.Signed](x, y T) T {
	return DivRemTiesToOdd(x, y).Quotient
}

// DivRemTiesToEven rounds to the nearest integer, ties to the even neighbour
// (banker's rounding, the IEEE 754 default).
func DivRemTiesToEven[T constraints.Signed](x, y T) Result[T] {
	return roundHalf(x, y, (x/y)%2 == 0)
}

// DivTiesToEven returns only the quotient of DivRemTiesToEven.
func DivTiesToEven[T constraints.Signed](x, y T) T {
	return DivRemTiesToEven(x, y).Quotient
}
