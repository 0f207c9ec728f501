package decimal

import (
	"errors"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/decimal256/integer"
)

// FormatError is the class of errors for malformed decimal notation.
var FormatError = errs.Class("decimal format")

// Parse reads decimal notation of the form [-]digits[.digits].
//
// The whole part is scaled by 10^Places and the fractional digits are added
// at their place value. The sign belongs to the whole part only, so "-1.5"
// is -1 + 0.5. More than Places fractional digits is an error, never a
// rounding.
func Parse(s string) (d Decimal, err error) {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return d, FormatError.New("unexpected number of dots: %q", s)
	}

	whole, err := integer.Parse(parts[0])
	if err != nil {
		if errors.Is(err, integer.ErrSyntax) {
			return d, FormatError.New("invalid whole part: %q", s)
		}

		return d, err
	}

	raw, err := whole.Mul(scale)
	if err != nil {
		return d, err
	}

	if len(parts) == 1 {
		return Decimal{raw: raw}, nil
	}

	fractional := parts[1]

	switch {
	case len(fractional) == 0:
		return d, FormatError.New("empty fractional part: %q", s)
	case len(fractional) > Places:
		return d, FormatError.New("more than %d fractional digits: %q", Places, s)
	}

	for i := 0; i < len(fractional); i++ {
		if fractional[i] < '0' || fractional[i] > '9' {
			return d, FormatError.New("invalid fractional part: %q", s)
		}
	}

	f, err := integer.Parse(fractional)
	if err != nil {
		return d, err
	}

	f, err = f.Mul(mustPow10(Places - len(fractional)))
	if err != nil {
		return d, err
	}

	raw, err = raw.Add(f)
	if err != nil {
		return d, err
	}

	return Decimal{raw: raw}, nil
}

// String returns the display form of d: the whole part truncated toward zero,
// followed by the fractional digits without trailing zeros, if any.
//
// The fractional digits are the Euclidean remainder of the raw value, which is
// never negative. For negative values that are not whole this means the
// fraction is counted up from the truncated whole part: raw -1.5e18 prints as
// "-1.5" and raw -0.5e18 prints as "0.5".
func (d Decimal) String() string {
	whole, err := d.raw.Quo(scale)
	if err != nil {
		panic(err)
	}

	fractional, err := d.raw.RemEuclid(scale)
	if err != nil {
		panic(err)
	}

	if fractional.IsZero() {
		return whole.String()
	}

	digits := fractional.String()

	sb := &strings.Builder{}
	sb.WriteString(whole.String())
	sb.WriteByte('.')
	sb.WriteString(strings.Repeat("0", Places-len(digits)))
	sb.WriteString(strings.TrimRight(digits, "0"))

	return sb.String()
}
