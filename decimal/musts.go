package decimal

import "github.com/calebcase/decimal256/integer"

// The functions in this file abort with a panic where the Checked variants
// return an error. The panic value is the error itself, so a recover can
// still use errors.Is.

// FromRatio is like CheckedFromRatio but panics on error.
func FromRatio(numerator, denominator integer.Int) Decimal {
	d, err := CheckedFromRatio(numerator, denominator)
	if err != nil {
		panic(err)
	}

	return d
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Add is like CheckedAdd but panics on overflow.
func (d Decimal) Add(e Decimal) Decimal {
	return must(d.CheckedAdd(e))
}

// Sub is like CheckedSub but panics on overflow.
func (d Decimal) Sub(e Decimal) Decimal {
	return must(d.CheckedSub(e))
}

// Mul is like CheckedMul but panics on overflow.
func (d Decimal) Mul(e Decimal) Decimal {
	return must(d.CheckedMul(e))
}

// Div is like CheckedDiv but panics on error.
func (d Decimal) Div(e Decimal) Decimal {
	return must(d.CheckedDiv(e))
}

// DivByInt is like CheckedDivByInt but panics on error.
func (d Decimal) DivByInt(w integer.Int) Decimal {
	return must(d.CheckedDivByInt(w))
}

// Pow is like CheckedPow but panics on overflow.
func (d Decimal) Pow(exp uint32) Decimal {
	return must(d.CheckedPow(exp))
}

// Abs is like CheckedAbs but panics on overflow.
func (d Decimal) Abs() Decimal {
	return must(d.CheckedAbs())
}

// AbsDiff is like CheckedAbsDiff but panics on overflow.
func (d Decimal) AbsDiff(e Decimal) Decimal {
	return must(d.CheckedAbsDiff(e))
}

// MultiplyRatio is like CheckedMultiplyRatio but panics on error.
func (d Decimal) MultiplyRatio(numerator, denominator Decimal) Decimal {
	return must(d.CheckedMultiplyRatio(numerator, denominator))
}

func must(d Decimal, err error) Decimal {
	if err != nil {
		panic(err)
	}

	return d
}
