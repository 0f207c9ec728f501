package decimal_test

import (
	"fmt"

	"github.com/calebcase/decimal256/decimal"
	"github.com/calebcase/decimal256/integer"
)

func Example() {
	price := decimal.MustParse("0.125")
	amount := decimal.Percent(15_000)

	fmt.Println(amount.Mul(price))
	fmt.Println(decimal.FromRatio(integer.FromInt64(1), integer.FromInt64(3)))

	inv, ok := decimal.Percent(300).Inv()
	fmt.Println(inv, ok)

	fmt.Println(decimal.Percent(124).ToIntegerWithPrecision(1))

	// Output:
	// 18.75
	// 0.333333333333333333
	// 0.333333333333333333 true
	// 12 <nil>
}
