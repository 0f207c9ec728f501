package integer

import (
	"github.com/calebcase/oops"
	"github.com/holiman/uint256"
)

// MaxPow10 is the largest n for which 10^n is an Int.
const MaxPow10 = 76

// pow10 is a cache of powers of 10, where pow10[n] = 10^n.
var pow10 [MaxPow10 + 1]Int

func init() {
	ten := uint256.NewInt(10)

	pow10[0] = One
	for n := 1; n <= MaxPow10; n++ {
		pow10[n].v.Mul(&pow10[n-1].v, ten)
	}
}

// Pow10 returns 10^n. It fails with ErrOverflow when n is negative or larger
// than MaxPow10.
func Pow10(n int) (Int, error) {
	if n < 0 || n > MaxPow10 {
		return Int{}, oops.Trace(ErrOverflow)
	}

	return pow10[n], nil
}
