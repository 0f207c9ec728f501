package decimal

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/decimal256/integer"
)

// Places is the number of decimal places of every Decimal.
const Places = 18

// Error is the class of errors returned by this package that are not integer
// range or division errors.
var Error = errs.Class("decimal")

var (
	// scale is 10^Places, the raw value of One.
	scale = mustPow10(Places)

	// scaleSquared is 10^(2*Places), used to invert without a second
	// rescale.
	scaleSquared = mustPow10(2 * Places)
)

// Decimal is a signed fixed point number with Places decimal places. The
// number is Raw() / 10^Places.
//
// Decimal is a value type. The zero value is 0 and == compares values.
type Decimal struct {
	raw integer.Int
}

// New returns the Decimal whose raw value is raw. The caller supplies an
// already scaled value: New(integer.One) is 10^-18.
func New(raw integer.Int) Decimal {
	return Decimal{raw: raw}
}

// NewInt64 is like New for raw values that fit an int64.
func NewInt64(raw int64) Decimal {
	return Decimal{raw: integer.FromInt64(raw)}
}

// Zero returns 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns 1.
func One() Decimal {
	return Decimal{raw: scale}
}

// Max returns the Decimal with the largest raw value. It is a sentinel, not a
// meaningful amount.
func Max() Decimal {
	return Decimal{raw: integer.MaxValue}
}

// Percent returns x%.
func Percent(x int64) Decimal {
	return scaled(x, Places-2)
}

// Permille returns x‰.
func Permille(x int64) Decimal {
	return scaled(x, Places-3)
}

// Bps returns x basis points.
func Bps(x int64) Decimal {
	return scaled(x, Places-4)
}

// scaled returns x * 10^n. An int64 times 10^n for n <= Places always fits.
func scaled(x int64, n int) Decimal {
	raw, err := integer.FromInt64(x).Mul(mustPow10(n))
	if err != nil {
		panic(err)
	}

	return Decimal{raw: raw}
}

// FromAtomics reinterprets atomics, an integer with places decimal places, as
// a Decimal.
//
// When places is larger than Places the extra digits are truncated toward
// zero. When places is smaller the value is multiplied up, which fails with
// integer.ErrOverflow if the result does not fit.
func FromAtomics(atomics integer.Int, places int) (d Decimal, err error) {
	switch {
	case places < Places:
		factor, err := integer.Pow10(Places - places)
		if err != nil {
			return d, err
		}

		raw, err := atomics.Mul(factor)
		if err != nil {
			return d, err
		}

		return Decimal{raw: raw}, nil
	case places > Places:
		factor, err := integer.Pow10(places - Places)
		if err != nil {
			// The divisor exceeds any representable magnitude.
			return Zero(), nil
		}

		raw, err := atomics.Quo(factor)
		if err != nil {
			return d, err
		}

		return Decimal{raw: raw}, nil
	}

	return Decimal{raw: atomics}, nil
}

// CheckedFromRatio returns numerator / denominator truncated toward zero to
// Places decimal places. The intermediate numerator * 10^Places is computed in
// 256 bits.
func CheckedFromRatio(numerator, denominator integer.Int) (d Decimal, err error) {
	if denominator.IsZero() {
		return d, oops.Trace(integer.ErrDivideByZero)
	}

	n, err := numerator.Mul(scale)
	if err != nil {
		return d, err
	}

	raw, err := n.Quo(denominator)
	if err != nil {
		return d, err
	}

	return Decimal{raw: raw}, nil
}

// Raw returns the underlying integer, the value times 10^Places.
func (d Decimal) Raw() integer.Int {
	return d.raw
}

// DecimalPlaces returns Places.
func (d Decimal) DecimalPlaces() int {
	return Places
}

// Atomics returns the raw value as the halves of a 128 bit signed integer and
// whether it fits.
func (d Decimal) Atomics() (hi int64, lo uint64, ok bool) {
	return d.raw.Int128()
}

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool {
	return d.raw.IsZero()
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.raw.Sign()
}

// Cmp compares d and e by raw value.
func (d Decimal) Cmp(e Decimal) int {
	return d.raw.Cmp(e.raw)
}

// CheckedAdd returns d + e.
func (d Decimal) CheckedAdd(e Decimal) (f Decimal, err error) {
	raw, err := d.raw.Add(e.raw)
	if err != nil {
		return f, err
	}

	return Decimal{raw: raw}, nil
}

// CheckedSub returns d - e.
func (d Decimal) CheckedSub(e Decimal) (f Decimal, err error) {
	raw, err := d.raw.Sub(e.raw)
	if err != nil {
		return f, err
	}

	return Decimal{raw: raw}, nil
}

// CheckedMul returns d * e truncated toward zero.
func (d Decimal) CheckedMul(e Decimal) (f Decimal, err error) {
	p, err := d.raw.Mul(e.raw)
	if err != nil {
		return f, err
	}

	raw, err := p.Quo(scale)
	if err != nil {
		return f, err
	}

	return Decimal{raw: raw}, nil
}

// CheckedDiv returns d / e truncated toward zero.
func (d Decimal) CheckedDiv(e Decimal) (f Decimal, err error) {
	return CheckedFromRatio(d.raw, e.raw)
}

// CheckedDivByInt divides the raw value of d by w without rescaling.
func (d Decimal) CheckedDivByInt(w integer.Int) (f Decimal, err error) {
	raw, err := d.raw.Quo(w)
	if err != nil {
		return f, err
	}

	return Decimal{raw: raw}, nil
}

// CheckedPow returns d^exp by repeated squaring. Every step is a CheckedMul,
// so intermediate results are truncated.
func (d Decimal) CheckedPow(exp uint32) (f Decimal, err error) {
	if exp == 0 {
		return One(), nil
	}

	x, y := d, One()
	for exp > 1 {
		if exp%2 == 1 {
			y, err = x.CheckedMul(y)
			if err != nil {
				return f, err
			}
		}

		x, err = x.CheckedMul(x)
		if err != nil {
			return f, err
		}

		exp /= 2
	}

	return x.CheckedMul(y)
}

// Inv returns 1 / d truncated toward zero. It returns false when d is zero.
func (d Decimal) Inv() (f Decimal, ok bool) {
	if d.IsZero() {
		return f, false
	}

	// 10^36 / raw cannot overflow: the divisor is at least 1 in magnitude.
	raw, err := scaleSquared.Quo(d.raw)
	if err != nil {
		return f, false
	}

	return Decimal{raw: raw}, true
}

// CheckedAbs returns |d|.
func (d Decimal) CheckedAbs() (f Decimal, err error) {
	raw, err := d.raw.Abs()
	if err != nil {
		return f, err
	}

	return Decimal{raw: raw}, nil
}

// CheckedAbsDiff returns |d - e|.
func (d Decimal) CheckedAbsDiff(e Decimal) (f Decimal, err error) {
	diff, err := d.CheckedSub(e)
	if err != nil {
		return f, err
	}

	return diff.CheckedAbs()
}

// CheckedMultiplyRatio returns CheckedFromRatio(d.Raw() * numerator.Raw(),
// denominator.Raw()). The raw values are multiplied before the single
// truncating division.
//
// The ratio is taken over raw values, so the result is d * numerator /
// denominator scaled up by 10^Places: Percent(1) with 2/5 (raw) is raw 4e33.
func (d Decimal) CheckedMultiplyRatio(numerator, denominator Decimal) (f Decimal, err error) {
	n, err := d.raw.Mul(numerator.raw)
	if err != nil {
		return f, err
	}

	return CheckedFromRatio(n, denominator.raw)
}

// ToIntegerWithPrecision returns d truncated toward zero to places decimal
// places, as an integer scaled by 10^places. For example 1.24 at 1 place is
// 12.
func (d Decimal) ToIntegerWithPrecision(places int) (x integer.Int, err error) {
	if places < 0 || places > Places {
		return x, Error.New("precision %d out of range [0, %d]", places, Places)
	}

	return d.raw.Quo(mustPow10(Places - places))
}

func mustPow10(n int) integer.Int {
	x, err := integer.Pow10(n)
	if err != nil {
		panic(err)
	}

	return x
}
