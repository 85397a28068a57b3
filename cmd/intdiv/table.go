package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/wavesplatform/intdiv/pkg/intdiv"
)

type row struct {
	name      string
	quotient  string
	remainder string
}

func evaluateAs[T constraints.Signed](x, y int64, conv func(int64) (T, error), ps []intdiv.Policy, remainders bool) ([]row, error) {
	nx, err := conv(x)
	if err != nil {
		return nil, errors.Wrapf(err, "dividend %d", x)
	}
	ny, err := conv(y)
	if err != nil {
		return nil, errors.Wrapf(err, "divisor %d", y)
	}
	return evaluate(nx, ny, ps, remainders)
}

func evaluate[T constraints.Signed](x, y T, ps []intdiv.Policy, remainders bool) ([]row, error) {
	if y == 0 {
		return nil, errDivisionByZero
	}
	if intdiv.Overflows(x, y) {
		return nil, errors.Wrapf(errOverflow, "%d / %d", x, y)
	}
	rs := make([]row, 0, len(ps)+3)
	for _, p := range ps {
		res := intdiv.DivRem(x, y, p)
		rs = append(rs, row{name: p.String(), quotient: format(res.Quotient), remainder: format(res.Remainder)})
	}
	if !remainders {
		return rs, nil
	}
	rs = append(rs,
		row{name: "remainder-dividend-sign", quotient: "-", remainder: format(intdiv.RemainderDividendSign(x, y))},
		row{name: "remainder-divisor-sign", quotient: "-", remainder: format(intdiv.RemainderDivisorSign(x, y))},
		row{name: "remainder-always-positive", quotient: "-", remainder: format(intdiv.RemainderAlwaysPositive(x, y))},
	)
	return rs, nil
}

func format[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// render draws the table in memory first so that a failed write to w is reported as a single error.
func render(w io.Writer, rs []row) error {
	sb := &strings.Builder{}
	table := tablewriter.NewWriter(sb)
	table.Header("POLICY", "QUOTIENT", "REMAINDER")
	for _, r := range rs {
		if err := table.Append([]string{r.name, r.quotient, r.remainder}); err != nil {
			return errors.Wrapf(err, "row %q", r.name)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
