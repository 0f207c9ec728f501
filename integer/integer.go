package integer

import (
	"errors"
	"math"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

var (
	// ErrOverflow is returned when a result does not fit in 256 bits.
	ErrOverflow = Error.New("overflow")

	// ErrDivideByZero is returned by division and remainder by zero.
	ErrDivideByZero = Error.New("divide by zero")

	// ErrSyntax is returned by Parse for anything but an optionally signed
	// run of ASCII digits.
	ErrSyntax = Error.New("invalid syntax")
)

// Int is a 256 bit two's complement signed integer.
//
// Int is a value type: arithmetic always returns a new Int and two Ints are
// equal (==) exactly when they hold the same number.
type Int struct {
	v uint256.Int
}

var (
	Zero = Int{}
	One  = FromInt64(1)

	// MinValue is -2^255.
	MinValue = Int{uint256.Int{0, 0, 0, 1 << 63}}

	// MaxValue is 2^255 - 1.
	MaxValue = Int{uint256.Int{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64 >> 1}}
)

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	ext := uint64(v >> 63)

	return Int{uint256.Int{uint64(v), ext, ext, ext}}
}

// FromInt128 returns the 128 bit signed integer hi*2^64 + lo as an Int.
func FromInt128(hi int64, lo uint64) Int {
	ext := uint64(hi >> 63)

	return Int{uint256.Int{lo, uint64(hi), ext, ext}}
}

// FromBig returns b as an Int. It fails with ErrOverflow if b is outside
// [-2^255, 2^255-1].
func FromBig(b *big.Int) (x Int, err error) {
	mag, overflow := uint256.FromBig(new(big.Int).Abs(b))
	if overflow {
		return x, oops.Trace(ErrOverflow)
	}

	return fromMagnitude(*mag, b.Sign() < 0)
}

// Parse reads a base 10 integer with an optional leading sign.
func Parse(s string) (x Int, err error) {
	digits, negative := s, false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		digits, negative = digits[1:], digits[0] == '-'
	}

	if len(digits) == 0 {
		return x, oops.Trace(ErrSyntax)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return x, oops.Trace(ErrSyntax)
		}
	}

	var mag uint256.Int
	err = mag.SetFromDecimal(digits)
	switch {
	case errors.Is(err, uint256.ErrBig256Range):
		return x, oops.Trace(ErrOverflow)
	case err != nil:
		return x, oops.Trace(ErrSyntax)
	}

	return fromMagnitude(mag, negative)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Int64 returns x as an int64 and whether it fits.
func (x Int) Int64() (int64, bool) {
	ext := uint64(int64(x.v[0]) >> 63)
	if x.v[1] != ext || x.v[2] != ext || x.v[3] != ext {
		return 0, false
	}

	return int64(x.v[0]), true
}

// Int128 returns x as the halves of a 128 bit signed integer (hi*2^64 + lo)
// and whether it fits. Nothing is truncated: when ok is false hi and lo are
// zero.
func (x Int) Int128() (hi int64, lo uint64, ok bool) {
	ext := uint64(int64(x.v[1]) >> 63)
	if x.v[2] != ext || x.v[3] != ext {
		return 0, 0, false
	}

	return int64(x.v[1]), x.v[0], true
}

// Big returns x as a new big.Int.
func (x Int) Big() *big.Int {
	mag := x.magnitude()

	b := mag.ToBig()
	if x.IsNeg() {
		b.Neg(b)
	}

	return b
}

// String returns the base 10 representation of x.
func (x Int) String() string {
	mag := x.magnitude()
	if x.IsNeg() {
		return "-" + mag.Dec()
	}

	return mag.Dec()
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.v.IsZero():
		return 0
	}

	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.v.IsZero()
}

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool {
	return x.v[3]>>63 == 1
}

// Cmp returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	xn, yn := x.IsNeg(), y.IsNeg()

	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}

	// Same sign: two's complement words order like their values.
	switch {
	case x.v.Lt(&y.v):
		return -1
	case x.v.Gt(&y.v):
		return 1
	}

	return 0
}

// Add returns x + y.
func (x Int) Add(y Int) (z Int, err error) {
	z.v.Add(&x.v, &y.v)

	if x.IsNeg() == y.IsNeg() && z.IsNeg() != x.IsNeg() {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return z, nil
}

// Sub returns x - y.
func (x Int) Sub(y Int) (z Int, err error) {
	z.v.Sub(&x.v, &y.v)

	if x.IsNeg() != y.IsNeg() && z.IsNeg() != x.IsNeg() {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return z, nil
}

// Mul returns x * y.
func (x Int) Mul(y Int) (z Int, err error) {
	if x.IsZero() || y.IsZero() {
		return Zero, nil
	}

	mx, my := x.magnitude(), y.magnitude()

	var p, q uint256.Int
	p.Mul(&mx, &my)

	// The unsigned product wrapped if dividing it back does not recover
	// the other factor.
	q.Div(&p, &my)
	if !q.Eq(&mx) {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return fromMagnitude(p, x.IsNeg() != y.IsNeg())
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (z Int, err error) {
	if y.IsZero() {
		return Int{}, oops.Trace(ErrDivideByZero)
	}

	mx, my := x.magnitude(), y.magnitude()

	var q uint256.Int
	q.Div(&mx, &my)

	return fromMagnitude(q, x.IsNeg() != y.IsNeg())
}

// Rem returns the remainder of x / y as computed by Quo. The result is zero
// or has the sign of x.
func (x Int) Rem(y Int) (z Int, err error) {
	if y.IsZero() {
		return Int{}, oops.Trace(ErrDivideByZero)
	}

	mx, my := x.magnitude(), y.magnitude()

	var r uint256.Int
	r.Mod(&mx, &my)

	return fromMagnitude(r, x.IsNeg())
}

// RemEuclid returns the remainder of x divided by y where the result is zero
// or has the sign of y. For a positive y the result is in [0, y) even when x
// is negative.
func (x Int) RemEuclid(y Int) (z Int, err error) {
	if y.IsZero() {
		return Int{}, oops.Trace(ErrDivideByZero)
	}

	mx, my := x.magnitude(), y.magnitude()

	var r uint256.Int
	r.Mod(&mx, &my)

	if !r.IsZero() && x.IsNeg() != y.IsNeg() {
		r.Sub(&my, &r)
	}

	return fromMagnitude(r, y.IsNeg())
}

// Neg returns -x.
func (x Int) Neg() (z Int, err error) {
	if x == MinValue {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return x.negate(), nil
}

// Abs returns |x|.
func (x Int) Abs() (z Int, err error) {
	if x.IsNeg() {
		return x.Neg()
	}

	return x, nil
}

// negate returns the two's complement of x without a range check.
func (x Int) negate() (z Int) {
	z.v.Sub(&z.v, &x.v)

	return z
}

// magnitude returns |x| as an unsigned word array. The magnitude of MinValue
// is 2^255, which is representable unsigned.
func (x Int) magnitude() uint256.Int {
	if x.IsNeg() {
		return x.negate().v
	}

	return x.v
}

// fromMagnitude applies a sign to an unsigned magnitude, failing when the
// signed result is out of range.
func fromMagnitude(mag uint256.Int, neg bool) (Int, error) {
	if neg {
		if mag.Gt(&MinValue.v) {
			return Int{}, oops.Trace(ErrOverflow)
		}

		return Int{mag}.negate(), nil
	}

	if mag[3]>>63 == 1 {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return Int{mag}, nil
}
