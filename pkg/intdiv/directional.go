package intdiv

import "golang.org/x/exp/constraints"

// DivRemToZero is the built-in truncating division: the remainder has the sign of x.
func DivRemToZero[T constraints.Signed](x, y T) Result[T] {
	return Result[T]{Quotient: x / y, Remainder: x % y}
}

// DivToZero returns only the quotient of DivRemToZero.
func DivToZero[T constraints.Signed](x, y T) T {
	return x / y
}

// DivRemAwayZero rounds the quotient away from zero.
func DivRemAwayZero[T constraints.Signed](x, y T) Result[T] {
	// Truncation already went toward zero, so every inexact quotient moves one step out.
	return magnify(x, y, x%y != 0)
}

// DivAwayZero returns only the quotient of DivRemAwayZero.
func DivAwayZero[T constraints.Signed](x, y T) T {
	return DivRemAwayZero(x, y).Quotient
}

// DivRemToInf rounds the quotient toward positive infinity (ceiling division).
func DivRemToInf[T constraints.Signed](x, y T) Result[T] {
	adjust := x%y != 0 && !quotientNegative(x, y)
	return offsetQuotient(x, y, b2i[T](adjust))
}

// DivToInf returns only the quotient of DivRemToInf.
func DivToInf[T constraints.Signed](x, y T) T {
	return DivRemToInf(x, y).Quotient
}

// DivRemToNegInf rounds the quotient toward negative infinity (floor division).
// The remainder has the sign of y, which makes it the same as Mod.
func DivRemToNegInf[T constraints.Signed](x, y T) Result[T] {
	adjust := x%y != 0 && quotientNegative(x, y)
	return offsetQuotient(x, y, -b2i[T](adjust))
}

// DivToNegInf returns only the quotient of DivRemToNegInf.
func DivToNegInf[T constraints.Signed](x, y T) T {
	return DivRemToNegInf(x, y).Quotient
}
