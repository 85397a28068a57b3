package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wavesplatform/intdiv/pkg/intdiv"
)

const (
	exitOK          = 0
	exitOutputError = 1
	exitBadInput    = 2
)

var version = "v0.0.0"

var (
	errDivisionByZero = errors.New("division by zero")
	errOverflow       = errors.New("quotient overflows")
)

type config struct {
	dividend    string
	divisor     string
	bits        int
	policy      string
	verbose     bool
	showHelp    bool
	showVersion bool
}

func newFlagSet(c *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("intdiv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&c.dividend, "dividend", "x", "", "Dividend; may also be given as the first positional argument")
	fs.StringVarP(&c.divisor, "divisor", "y", "", "Divisor; may also be given as the second positional argument")
	fs.IntVarP(&c.bits, "bits", "b", 64, "Width of the signed integer type: 8, 16, 32 or 64")
	fs.StringVarP(&c.policy, "policy", "p", "", "Print only the given rounding policy, for example \"ties-to-even\"")
	fs.BoolVar(&c.verbose, "verbose", false, "Logs additional information")
	fs.BoolVarP(&c.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	fs.BoolVarP(&c.showVersion, "version", "v", false, "Print version information and quit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "\nUsage of intdiv %s\n", version)
		_, _ = fmt.Fprintf(stderr, "  intdiv [flags] [--] <dividend> <divisor>\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints the quotient and remainder of the division under every rounding policy.\n")
		_, _ = fmt.Fprintf(stderr, "Use \"--\" before negative positional operands.\n\n")
		fs.PrintDefaults()
	}
	return fs
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	al := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		al.SetLevel(zap.DebugLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c := new(config)
	fs := newFlagSet(c, stderr)
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}
	if c.showHelp {
		fs.Usage()
		return exitOK
	}
	if c.showVersion {
		_, _ = fmt.Fprintf(stdout, "intdiv %s\n", version)
		return exitOK
	}
	logger := newLogger(stderr, c.verbose)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 2:
		c.dividend, c.divisor = pos[0], pos[1]
	default:
		log.Errorf("Expected two positional operands, got %d", len(pos))
		fs.Usage()
		return exitBadInput
	}
	if c.dividend == "" || c.divisor == "" {
		log.Error("Both dividend and divisor are required")
		fs.Usage()
		return exitBadInput
	}
	policies := intdiv.Policies()
	if c.policy != "" {
		p, err := intdiv.ParsePolicy(c.policy)
		if err != nil {
			log.Errorf("Invalid policy: %v", err)
			return exitBadInput
		}
		policies = []intdiv.Policy{p}
	}
	x, err := strconv.ParseInt(c.dividend, 0, 64)
	if err != nil {
		log.Errorf("Invalid dividend: %v", err)
		return exitBadInput
	}
	y, err := strconv.ParseInt(c.divisor, 0, 64)
	if err != nil {
		log.Errorf("Invalid divisor: %v", err)
		return exitBadInput
	}
	log.Debugf("Dividing %d by %d as int%d", x, y, c.bits)
	if y != 0 {
		log.Debugf("Approximate quotient: %g", float64(x)/float64(y))
	}

	rs, err := evaluateBits(x, y, c.bits, policies, c.policy == "")
	if err != nil {
		log.Errorf("Failed to divide: %v", err)
		return exitBadInput
	}
	if err := render(stdout, rs); err != nil {
		log.Errorf("Failed to print results: %v", err)
		return exitOutputError
	}
	return exitOK
}

func evaluateBits(x, y int64, bits int, ps []intdiv.Policy, remainders bool) ([]row, error) {
	switch bits {
	case 8:
		return evaluateAs(x, y, func(v int64) (int8, error) { return safecast.ToInt8(v) }, ps, remainders)
	case 16:
		return evaluateAs(x, y, func(v int64) (int16, error) { return safecast.ToInt16(v) }, ps, remainders)
	case 32:
		return evaluateAs(x, y, func(v int64) (int32, error) { return safecast.ToInt32(v) }, ps, remainders)
	case 64:
		return evaluateAs(x, y, func(v int64) (int64, error) { return v, nil }, ps, remainders)
	default:
		return nil, errors.Errorf("unsupported width %d", bits)
	}
}
