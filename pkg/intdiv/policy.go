package intdiv

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
	"golang.org/x/exp/constraints"
)

// ErrUnknownPolicy is returned when a policy name is not recognised.
var ErrUnknownPolicy = errors.New("unknown rounding policy")

// Policy selects how an inexact quotient is rounded to an integer.
type Policy uint8

const (
	ToZero Policy = iota
	AwayZero
	ToInf
	ToNegInf
	ToOdd
	ToEven
	TiesToZero
	TiesAwayZero
	TiesToInf
	TiesToNegInf
	TiesToOdd
	TiesToEven
	policiesCount
)

var policyNames = [policiesCount]string{
	ToZero:       "ToZero",
	AwayZero:     "AwayZero",
	ToInf:        "ToInf",
	ToNegInf:     "ToNegInf",
	ToOdd:        "ToOdd",
	ToEven:       "ToEven",
	TiesToZero:   "TiesToZero",
	TiesAwayZero: "TiesAwayZero",
	TiesToInf:    "TiesToInf",
	TiesToNegInf: "TiesToNegInf",
	TiesToOdd:    "TiesToOdd",
	TiesToEven:   "TiesToEven",
}

// Policies returns all rounding policies in declaration order.
func Policies() []Policy {
	ps := make([]Policy, 0, policiesCount)
	for p := ToZero; p < policiesCount; p++ {
		ps = append(ps, p)
	}
	return ps
}

// IsValid reports whether p is one of the defined policies.
func (p Policy) IsValid() bool {
	return p < policiesCount
}

// String returns the kebab-case name of the policy, e.g. "ties-to-even".
func (p Policy) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
	return strcase.KebabCase(policyNames[p])
}

// ParsePolicy parses a policy name written in kebab, snake or camel case.
func ParsePolicy(s string) (Policy, error) {
	name := strcase.KebabCase(strings.TrimSpace(s))
	for p := ToZero; p < policiesCount; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPolicy, "failed to parse %q", s)
}

// MarshalText encodes the policy as its kebab-case name.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, errors.Wrapf(ErrUnknownPolicy, "failed to marshal %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText accepts any name ParsePolicy accepts.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DivRem divides x by y rounding the quotient according to p. It panics if p is not valid.
func DivRem[T constraints.Signed](x, y T, p Policy) Result[T] {
	switch p {
	case ToZero:
		return DivRemToZero(x, y)
	case AwayZero:
		return DivRemAwayZero(x, y)
	case ToInf:
		return DivRemToInf(x, y)
	case ToNegInf:
		return DivRemToNegInf(x, y)
	case ToOdd:
		return DivRemToOdd(x, y)
	case ToEven:
		return DivRemToEven(x, y)
	case TiesToZero:
		return DivRemTiesToZero(x, y)
	case TiesAwayZero:
		return DivRemTiesAwayZero(x, y)
	case TiesToInf:
		return DivRemTiesToInf(x, y)
	case TiesToNegInf:
		return DivRemTiesToNegInf(x, y)
	case TiesToOdd:
		return DivRemTiesToOdd(x, y)
	case TiesToEven:
		return DivRemTiesToEven(x, y)
	default:
		panic(fmt.Sprintf("intdiv: invalid policy %d", uint8(p)))
	}
}

// Div is DivRem without the remainder.
func Div[T constraints.Signed](x, y T, p Policy) T {
	return DivRem(x, y, p).Quotient
}
