// SPDX-License-Identifier: MIT

package fixed_test

import (
	"fmt"

	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

// ExampleFromFloat64 builds a Q8.8 value and shows its raw register.
func ExampleFromFloat64() {
	x := fixed.FromFloat64[width.W8, width.W8](1.5)
	fmt.Println(x, x.Raw(), x.Hex())

	// Output:
	// 1.5 384 0x0180
}

// ExampleFixed_Mul multiplies in Q16.16; the product is shifted back by F.
func ExampleFixed_Mul() {
	a := fixed.FromFloat64[width.W16, width.W16](1.5)
	b := fixed.FromFloat64[width.W16, width.W16](2.25)
	fmt.Println(a.Mul(b))

	// Output:
	// 3.375
}

// ExampleFixed_ToJSONWithMeta prints the self-describing form.
func ExampleFixed_ToJSONWithMeta() {
	data, err := fixed.FromFloat64[width.W8, width.W8](1.5).ToJSONWithMeta()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))

	// Output:
	// {"intBits":8,"fracBits":8,"raw":384}
}

// ExampleFixed_Sin evaluates sin(1 rad) in Q16.16.
func ExampleFixed_Sin() {
	s, err := fixed.One[width.W16, width.W16]().Sin()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d %.4f\n", s.Raw(), s.Float64())

	// Output:
	// 55145 0.8414
}
