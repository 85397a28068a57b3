package intdiv

import (
	"github.com/ericlagergren/decimal"
	"github.com/pkg/errors"
)

// ErrUnsupportedRoundingMode is returned for decimal rounding modes no policy matches.
var ErrUnsupportedRoundingMode = errors.New("unsupported rounding mode")

var roundingModes = map[Policy]decimal.RoundingMode{
	ToZero:       decimal.ToZero,
	AwayZero:     decimal.AwayFromZero,
	ToInf:        decimal.ToPositiveInf,
	ToNegInf:     decimal.ToNegativeInf,
	TiesToZero:   decimal.ToNearestTowardZero,
	TiesAwayZero: decimal.ToNearestAway,
	TiesToEven:   decimal.ToNearestEven,
}

// RoundingMode returns the decimal rounding mode that rounds the same way as p.
// Parity policies and ties toward an infinity or to odd have no counterpart.
func (p Policy) RoundingMode() (decimal.RoundingMode, bool) {
	m, ok := roundingModes[p]
	return m, ok
}

// PolicyFromRoundingMode is the inverse of Policy.RoundingMode.
func PolicyFromRoundingMode(mode decimal.RoundingMode) (Policy, error) {
	for p, m := range roundingModes {
		if m == mode {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedRoundingMode, "no policy for %v", mode)
}
