package xfloat_test

import (
	"fmt"
	"math"

	"github.com/omeyang/xfloat/pkg/xfloat"
)

func ExampleDisassemble() {
	f := xfloat.Disassemble(1.5)
	fmt.Println(f.Sign, f.Exponent, f.Fraction)
	fmt.Println(f.Unbiased())
	// Output:
	// 0 1023 2251799813685248
	// 0
}

func ExampleAssemble() {
	x, _ := xfloat.Assemble(0, 2047, 0)
	fmt.Println(x)

	_, err := xfloat.Assemble(0, 2048, 0)
	fmt.Println(err != nil)
	// Output:
	// +Inf
	// true
}

func ExampleNext() {
	fmt.Println(xfloat.Next(1.0))
	fmt.Println(xfloat.Next(math.MaxFloat64))
	// Output:
	// 1.0000000000000002
	// +Inf
}

func ExampleULP() {
	fmt.Println(xfloat.ULP(1.0))
	fmt.Println(xfloat.ULP(0.0) == math.SmallestNonzeroFloat64)
	// Output:
	// 2.220446049250313e-16
	// true
}

func ExampleApproxEqual() {
	fmt.Println(0.1+0.2 == 0.3)
	fmt.Println(xfloat.ApproxEqual(0.1+0.2, 0.3))
	// Output:
	// false
	// true
}

func ExampleCompare() {
	less, _ := xfloat.Compare(1.0, 2.0)
	equal, _ := xfloat.Compare(0.1+0.2, 0.3)
	greater, _ := xfloat.Compare(2.0, 1.0)
	fmt.Println(less, equal, greater)
	// Output:
	// -1 0 1
}

func ExampleToHex() {
	fmt.Println(xfloat.ToHex(1.5))
	fmt.Println(xfloat.ToHex(math.Copysign(0, -1)))
	// Output:
	// 3ff8000000000000
	// 8000000000000000
}

func ExampleClassify() {
	fmt.Println(xfloat.Classify(math.Copysign(0, -1)))
	fmt.Println(xfloat.Classify(math.SmallestNonzeroFloat64))
	fmt.Println(xfloat.Classify(1.5))
	// Output:
	// negative-zero
	// subnormal
	// normal
}

func ExampleSign() {
	fmt.Println(xfloat.Sign(-2.5, true))
	fmt.Println(xfloat.Sign(0, true))
	fmt.Println(xfloat.Sign(math.Copysign(0, -1), false))
	// Output:
	// -1
	// 0
	// -1
}
