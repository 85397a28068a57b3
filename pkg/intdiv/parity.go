package intdiv

import "golang.org/x/exp/constraints"

// DivRemToOdd rounds an inexact quotient to whichever neighbouring integer is odd.
// Exact quotients are returned as is, whatever their parity.
func DivRemToOdd[T constraints.Signed](x, y T) Result[T] {
	return magnify(x, y, x%y != 0 && (x/y)%2 == 0)
}

// DivToOdd returns only the quotient of DivRemToOdd.
func DivToOdd[T constraints.Signed](x, y T) T {
	return DivRemToOdd(x, y).Quotient
}

// DivRemToEven rounds an inexact quotient to whichever neighbouring integer is even.
func DivRemToEven[T constraints.Signed](x, y T) Result[T] {
	return magnify(x, y, x%y != 0 && (x/y)%2 != 0)
}

// DivToEven returns only the quotient of DivRemToEven.
func DivToEven[T constraints.Signed](x, y T) T {
	return DivRemToEven(x, y).Quotient
}
