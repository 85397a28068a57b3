package intdiv

import (
	"testing"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundingModeRoundTrip(t *testing.T) {
	mapped := 0
	for _, p := range Policies() {
		m, ok := p.RoundingMode()
		if !ok {
			continue
		}
		mapped++
		back, err := PolicyFromRoundingMode(m)
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
	assert.Equal(t, 7, mapped)
	for _, p := range []Policy{ToOdd, ToEven, TiesToInf, TiesToNegInf, TiesToOdd} {
		_, ok := p.RoundingMode()
		assert.False(t, ok, p.String())
	}
}

func TestPolicyFromRoundingMode(t *testing.T) {
	for i, tc := range []struct {
		mode decimal.RoundingMode
		p    Policy
	}{
		{decimal.ToZero, ToZero},
		{decimal.AwayFromZero, AwayZero},
		{decimal.ToPositiveInf, ToInf},
		{decimal.ToNegativeInf, ToNegInf},
		{decimal.ToNearestTowardZero, TiesToZero},
		{decimal.ToNearestAway, TiesAwayZero},
		{decimal.ToNearestEven, TiesToEven},
	} {
		p, err := PolicyFromRoundingMode(tc.mode)
		require.NoError(t, err, i)
		assert.Equal(t, tc.p, p, i)
	}
	_, err := PolicyFromRoundingMode(decimal.RoundingMode(100))
	assert.ErrorIs(t, err, ErrUnsupportedRoundingMode)
}

// decimalDiv divides x by y with decimal arithmetic rounded according to mode.
// With 34 digits of precision an int32 quotient keeps at least 24 fractional digits, far more
// than needed to tell ties, integers and everything in between apart.
func decimalDiv(x, y int32, mode decimal.RoundingMode) (int64, bool) {
	context := decimal.Context128
	context.RoundingMode = mode
	q := decimal.WithContext(context).SetMantScale(int64(x), 0)
	d := decimal.WithContext(context).SetMantScale(int64(y), 0)
	q.Quo(q, d)
	return q.RoundToInt().Int64()
}

func TestAgreesWithDecimal(t *testing.T) {
	vs := int32Operands()
	for v := int32(-25); v <= 25; v++ {
		vs = append(vs, v*7)
	}
	for _, p := range Policies() {
		mode, ok := p.RoundingMode()
		if !ok {
			continue
		}
		for _, x := range vs {
			for _, y := range vs {
				if y == 0 || Overflows(x, y) {
					continue
				}
				expected, ok := decimalDiv(x, y, mode)
				require.True(t, ok)
				if got := Div(x, y, p); int64(got) != expected {
					require.Failf(t, "disagrees with decimal", "%s: %d / %d = %d, decimal gives %d",
						p, x, y, got, expected)
				}
			}
		}
	}
}
