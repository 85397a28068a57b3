package intdiv

import (
	"math"
	"math/big"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// referenceDiv computes the rounded quotient x/y with big integers: the magnitude |x|/|y| is
// rounded according to p, then the sign is restored.
func referenceDiv(x, y int64, p Policy) *big.Int {
	bx, by := big.NewInt(x), big.NewInt(y)
	s := bx.Sign() * by.Sign()
	ay := new(big.Int).Abs(by)
	r, m := new(big.Int).QuoRem(new(big.Int).Abs(bx), ay, new(big.Int))
	inexact := m.Sign() != 0
	odd := r.Bit(0) == 1
	// half compares the dropped fraction with one half: -1 below, 0 a tie, 1 above.
	half := new(big.Int).Lsh(m, 1).Cmp(ay)
	var up bool
	switch p {
	case ToZero:
		up = false
	case AwayZero:
		up = inexact
	case ToInf:
		up = inexact && s > 0
	case ToNegInf:
		up = inexact && s < 0
	case ToOdd:
		up = inexact && !odd
	case ToEven:
		up = inexact && odd
	case TiesToZero:
		up = half > 0
	case TiesAwayZero:
		up = half >= 0
	case TiesToInf:
		up = half > 0 || half == 0 && s > 0
	case TiesToNegInf:
		up = half > 0 || half == 0 && s < 0
	case TiesToOdd:
		up = half > 0 || half == 0 && !odd
	case TiesToEven:
		up = half > 0 || half == 0 && odd
	default:
		panic("unexpected policy")
	}
	if up {
		r.Add(r, big.NewInt(1))
	}
	if s < 0 {
		r.Neg(r)
	}
	return r
}

// referenceRem returns x - y*q computed without overflow.
func referenceRem(x, y int64, q *big.Int) *big.Int {
	r := new(big.Int).Mul(big.NewInt(y), q)
	return r.Sub(big.NewInt(x), r)
}

// operands returns the interesting values of T: both extremes with their neighbours, small
// numbers around zero and a few pseudo-random values.
func operands[T constraints.Signed](minV, maxV T, seed uint64) []T {
	vs := []T{minV, minV + 1, minV + 2, minV / 2, minV/2 + 1, maxV, maxV - 1, maxV - 2, maxV / 2, maxV/2 + 1}
	for v := T(-10); v <= 10; v++ {
		vs = append(vs, v)
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for range 40 {
		v := T(rnd.Uint64())
		vs = append(vs, v, T(int64(v)/1000))
	}
	return vs
}

func int16Operands() []int16 { return operands[int16](math.MinInt16, math.MaxInt16, 16) }

func int32Operands() []int32 { return operands[int32](math.MinInt32, math.MaxInt32, 32) }

func int64Operands() []int64 { return operands[int64](math.MinInt64, math.MaxInt64, 64) }
