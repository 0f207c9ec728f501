// Package decimal provides a deterministic fixed point base 10 number.
//
// The equation for a decimal number is:
//
//	number = raw / 10^18
//
// Where raw is a 256 bit signed integer (see package integer) and 18 is the
// fixed number of decimal places shared by every Decimal. For example:
//
//	1.23 = 1_230_000_000_000_000_000 / 10^18
//
// The largest raw value is 2^255 - 1, approximately 5.79 * 10^58 whole units.
//
// # Rounding
//
// Every operation that discards digits truncates toward zero. There is no
// rounding to nearest anywhere in the package, so the same inputs produce the
// same raw value on every machine:
//
//	| Operation                   | Computed as                     |
//	|-----------------------------|---------------------------------|
//	| a.Mul(b)                    | (a.raw * b.raw) / 10^18         |
//	| a.Div(b)                    | (a.raw * 10^18) / b.raw         |
//	| a.Inv()                     | 10^36 / a.raw                   |
//	| a.MultiplyRatio(n, d)       | (a.raw * n.raw * 10^18) / d.raw |
//	| a.DivByInt(w)               | a.raw / w                       |
//	| FromAtomics(v, 20)          | v / 10^2                        |
//	| a.ToIntegerWithPrecision(2) | a.raw / 10^16                   |
//
// Intermediate products are exact in 256 bits. A result outside the 256 bit
// range is integer.ErrOverflow, never a wrapped value.
//
// # Failures
//
// Overflow is fatal for the computation. The plain operators (Add, Sub, Mul,
// Div, Pow, Abs, AbsDiff, MultiplyRatio, DivByInt, FromRatio) panic with the
// error value. Each has a Checked form returning the same error instead.
//
// Division by zero is integer.ErrDivideByZero. Inv reports a zero input with
// ok == false rather than an error.
//
// Malformed decimal notation is a FormatError.
//
// # Examples
//
// Percentages:
//
//	Percent(50).Add(Percent(50)) == One()
//	Percent(150) == FromRatio(3, 2)
//
// Truncation:
//
//	FromRatio(1, 3).Raw() == 333_333_333_333_333_333
//	Percent(124).ToIntegerWithPrecision(1) == 12
//
// Display:
//
//	New(123_400_000_000_000_000).String() == "0.1234"
//	New(100 * 10^18).String() == "100"
//
// # Encoding
//
// Binary, JSON and msgpack encodings carry only the raw integer. Binary uses
// the zigzag layout of integer.Int.MarshalBinary, msgpack wraps the same bytes
// in a bin, and JSON uses a base 10 string:
//
//	Percent(150) -> "1500000000000000000"
package decimal
