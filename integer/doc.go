// Package integer provides a fixed width 256 bit signed integer.
//
// Values are two's complement in the range [-2^255, 2^255-1]. Every operation
// that can leave that range reports ErrOverflow instead of wrapping, and every
// division reports ErrDivideByZero instead of panicking. Division truncates
// toward zero. Results never depend on the platform.
//
// # Remainders
//
// Rem is the remainder of truncating division and has the sign of the
// dividend. RemEuclid has the sign of the divisor, so for a positive divisor
// it is never negative:
//
//	Rem(-7, 2)       = -1
//	RemEuclid(-7, 2) = +1
//
// # Encoding
//
// MarshalBinary writes the big-endian magnitude with the sign in the trailing
// bit (aka zigzag):
//
//	| +0   | 0000_0000 |
//	| +1   | 0000_0010 |
//	| -1   | 0000_0011 |
//	| +127 | 1111_1110 |
//	| -127 | 1111_1111 |
package integer
