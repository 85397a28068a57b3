package intdiv

import "golang.org/x/exp/constraints"

// RemainderDividendSign returns the remainder of truncating division, which is zero or has the
// sign of x. It is the built-in % operator.
func RemainderDividendSign[T constraints.Signed](x, y T) T {
	return x % y
}

// RemainderDivisorSign returns the remainder of floor division, which is zero or has the sign of y.
func RemainderDivisorSign[T constraints.Signed](x, y T) T {
	r := x % y
	// A nonzero r has the sign of x. When x and y disagree, adding y flips it to the sign of y,
	// and |r| < |y| keeps the sum in range.
	if r != 0 && quotientNegative(x, y) {
		r += y
	}
	return r
}

// Mod is the mathematical modulo operation, the same as RemainderDivisorSign.
// Mod(-7, 3) == 2 and Mod(7, -3) == -2.
func Mod[T constraints.Signed](x, y T) T {
	return RemainderDivisorSign(x, y)
}

// RemainderAlwaysPositive returns the Euclidean remainder, which lies in [0, |y|).
func RemainderAlwaysPositive[T constraints.Signed](x, y T) T {
	r := x % y
	if r < 0 {
		r = T(uint64(r) + absUint64(y))
	}
	return r
}

// absUint64 returns |y| as an unsigned value, which is exact even for MinInt.
func absUint64[T constraints.Signed](y T) uint64 {
	if y < 0 {
		return -uint64(y)
	}
	return uint64(y)
}
