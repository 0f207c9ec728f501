// Command decimal256 evaluates a single fixed point decimal operation.
//
// Usage:
//
//	decimal256 [-v] [-json] <op> <args...>
//
// Run decimal256 help for the list of operations.
//
// Decimal arguments use decimal notation ("1.5"), integer arguments are base 10
// integers. For example:
//
//	decimal256 mul 1.5 2.25        # 3.375
//	decimal256 ratio 1 3           # 0.333333333333333333
//	decimal256 atomics 123456 3    # 123.456
//	decimal256 precision 1.24 1    # 12
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/urfave/cli.v1"

	"github.com/calebcase/decimal256/decimal"
	"github.com/calebcase/decimal256/integer"
)

// Error is the class of usage errors.
var Error = errs.Class("decimal256")

// result is the outcome of an operation. Exactly one of dec and num is set.
type result struct {
	dec *decimal.Decimal
	num *integer.Int
}

func (r result) String() string {
	if r.dec != nil {
		return r.dec.String()
	}

	return r.num.String()
}

func (r result) MarshalJSON() ([]byte, error) {
	if r.dec != nil {
		return json.Marshal(struct {
			Value string          `json:"value"`
			Raw   decimal.Decimal `json:"raw"`
		}{r.dec.String(), *r.dec})
	}

	return json.Marshal(struct {
		Value string `json:"value"`
	}{r.num.String()})
}

type operation struct {
	name      string
	usage     string
	argsUsage string
	args      int
	fn        func(args []string) (result, error)
}

var operations = []operation{
	{"add", "a + b", "<a> <b>", 2, binary(decimal.Decimal.CheckedAdd)},
	{"sub", "a - b", "<a> <b>", 2, binary(decimal.Decimal.CheckedSub)},
	{"mul", "a * b", "<a> <b>", 2, binary(decimal.Decimal.CheckedMul)},
	{"div", "a / b", "<a> <b>", 2, binary(decimal.Decimal.CheckedDiv)},
	{"absdiff", "|a - b|", "<a> <b>", 2, binary(decimal.Decimal.CheckedAbsDiff)},
	{"abs", "|a|", "<a>", 1, unary(decimal.Decimal.CheckedAbs)},
	{"inv", "1 / a", "<a>", 1, inv},
	{"pow", "a ^ exp", "<a> <exp>", 2, pow},
	{"ratio", "n / d of two integers", "<n> <d>", 2, ratio},
	{"muldiv", "a * n / d", "<a> <n> <d>", 3, muldiv},
	{"divint", "a / w for an integer w", "<a> <w>", 2, divint},
	{"atomics", "v scaled down by places", "<v> <places>", 2, atomics},
	{"precision", "a as an integer with places digits", "<a> <places>", 2, precision},
}

func decimals(args []string) (ds []decimal.Decimal, err error) {
	for _, arg := range args {
		d, err := decimal.Parse(arg)
		if err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}

	return ds, nil
}

func ok(d decimal.Decimal, err error) (result, error) {
	if err != nil {
		return result{}, err
	}

	return result{dec: &d}, nil
}

func binary(fn func(a, b decimal.Decimal) (decimal.Decimal, error)) func([]string) (result, error) {
	return func(args []string) (result, error) {
		ds, err := decimals(args)
		if err != nil {
			return result{}, err
		}

		return ok(fn(ds[0], ds[1]))
	}
}

func unary(fn func(a decimal.Decimal) (decimal.Decimal, error)) func([]string) (result, error) {
	return func(args []string) (result, error) {
		ds, err := decimals(args)
		if err != nil {
			return result{}, err
		}

		return ok(fn(ds[0]))
	}
}

func inv(args []string) (result, error) {
	ds, err := decimals(args)
	if err != nil {
		return result{}, err
	}

	d, found := ds[0].Inv()
	if !found {
		return result{}, Error.New("%s has no inverse", ds[0])
	}

	return result{dec: &d}, nil
}

func pow(args []string) (result, error) {
	ds, err := decimals(args[:1])
	if err != nil {
		return result{}, err
	}

	exp, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return result{}, Error.Wrap(err)
	}

	return ok(ds[0].CheckedPow(uint32(exp)))
}

func ratio(args []string) (result, error) {
	n, err := integer.Parse(args[0])
	if err != nil {
		return result{}, err
	}

	d, err := integer.Parse(args[1])
	if err != nil {
		return result{}, err
	}

	return ok(decimal.CheckedFromRatio(n, d))
}

func muldiv(args []string) (result, error) {
	ds, err := decimals(args)
	if err != nil {
		return result{}, err
	}

	return ok(ds[0].CheckedMultiplyRatio(ds[1], ds[2]))
}

func divint(args []string) (result, error) {
	ds, err := decimals(args[:1])
	if err != nil {
		return result{}, err
	}

	w, err := integer.Parse(args[1])
	if err != nil {
		return result{}, err
	}

	return ok(ds[0].CheckedDivByInt(w))
}

func atomics(args []string) (result, error) {
	v, err := integer.Parse(args[0])
	if err != nil {
		return result{}, err
	}

	places, err := strconv.Atoi(args[1])
	if err != nil {
		return result{}, Error.Wrap(err)
	}

	return ok(decimal.FromAtomics(v, places))
}

func precision(args []string) (result, error) {
	ds, err := decimals(args[:1])
	if err != nil {
		return result{}, err
	}

	places, err := strconv.Atoi(args[1])
	if err != nil {
		return result{}, Error.Wrap(err)
	}

	x, err := ds[0].ToIntegerWithPrecision(places)
	if err != nil {
		return result{}, err
	}

	return result{num: &x}, nil
}

var (
	verboseFlag = cli.BoolFlag{
		Name:  "v",
		Usage: "log each step to stderr",
	}
	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "print the result as JSON",
	}
)

// newApp returns the command line application. Results are written to stdout,
// logs to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	log := zap.NewNop()

	app := cli.NewApp()
	app.Name = "decimal256"
	app.Usage = "evaluate a fixed point decimal operation"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		verboseFlag,
		jsonFlag,
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool(verboseFlag.Name) {
			log = zap.New(zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(stderr),
				zap.DebugLevel,
			))
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		_ = log.Sync()

		return nil
	}

	app.Action = func(c *cli.Context) error {
		_ = cli.ShowAppHelp(c)

		if !c.Args().Present() {
			return Error.New("missing operation")
		}

		return Error.New("unknown operation %q", c.Args().First())
	}

	for _, op := range operations {
		op := op

		app.Commands = append(app.Commands, cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: op.argsUsage,
			// Operands such as -2 are not flags.
			SkipFlagParsing: true,
			Action: func(c *cli.Context) error {
				return evaluate(c, log, op, stdout)
			},
		})
	}

	return app
}

func evaluate(c *cli.Context, log *zap.Logger, op operation, stdout io.Writer) (err error) {
	operands := []string(c.Args())

	if len(operands) != op.args {
		_ = cli.ShowCommandHelp(c, op.name)

		return Error.New("%s takes %d arguments, got %d", op.name, op.args, len(operands))
	}

	log.Debug("evaluating", zap.String("op", op.name), zap.Strings("args", operands))

	r, err := op.fn(operands)
	if err != nil {
		log.Debug("failed", zap.String("op", op.name), zap.Error(err))

		return err
	}

	log.Debug("evaluated", zap.String("op", op.name), zap.Stringer("result", r))

	if c.GlobalBool(jsonFlag.Name) {
		data, err := json.Marshal(r)
		if err != nil {
			return Error.Wrap(err)
		}

		_, err = fmt.Fprintf(stdout, "%s\n", data)

		return err
	}

	_, err = fmt.Fprintln(stdout, r)

	return err
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	return newApp(stdout, stderr).Run(append([]string{"decimal256"}, args...))
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		log.Error("decimal256", zap.Error(err))
		_ = log.Sync()

		os.Exit(1)
	}
}
