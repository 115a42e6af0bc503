package xfloat

import (
	"fmt"
	"math"
)

const (
	// DefaultRelTol 是近似比较的默认相对容差。
	DefaultRelTol = 1e-9

	// Epsilon 是机器精度 2^-52，即 1.0 与下一个可表示值的间距，
	// 同时是近似比较的默认绝对容差。
	Epsilon = 0x1p-52
)

// ApproxEqual 使用默认容差（相对 [DefaultRelTol]、绝对 [Epsilon]）
// 判断 a 与 b 是否近似相等。
//
// NaN 与任何值（包括它自身）都不相等；无穷只与位级相同的无穷相等。
// 默认容差恒合法，因此没有错误返回；自定义容差用 [ApproxEqualTol]。
func ApproxEqual(a, b float64) bool {
	eq, _ := ApproxEqualTol(a, b, DefaultRelTol, Epsilon)
	return eq
}

// ApproxEqualTol 使用给定容差判断 a 与 b 是否近似相等。
// relTol 或 absTol 为负时返回 [ErrNegativeTolerance]。
//
// 判定顺序：
//  1. 任一参数为 NaN → false（NaN 不与任何值接近）
//  2. 任一参数为无穷 → 仅当 a 与 b 是同号无穷时 true
//  3. a == b → true（快路径，±0.0 视为相等）
//  4. |a-b| <= absTol → true
//  5. |a-b| <= relTol * max(|a|, |b|) → true，否则 false
//
// 按构造对 a、b 对称。
func ApproxEqualTol(a, b, relTol, absTol float64) (bool, error) {
	if err := validateTolerances(relTol, absTol); err != nil {
		return false, err
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false, nil
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b, nil
	}
	if a == b {
		return true, nil
	}
	diff := math.Abs(a - b)
	if diff <= absTol {
		return true, nil
	}
	return diff <= relTol*math.Max(math.Abs(a), math.Abs(b)), nil
}

// Compare 使用默认容差对 a、b 做三向比较。
// 返回值只会是 -1、0 或 +1（可直接用作排序比较器）：
// 近似相等返回 0，否则返回 a-b 的归一化符号。
//
// 任一参数为 NaN 时返回 [ErrNaNCompare]：NaN 没有序关系，
// 三向比较报错而非返回哨兵值（与 [ApproxEqual] 对 NaN 返回 false 不同，
// 这一不对称是刻意设计）。
func Compare(a, b float64) (int, error) {
	return CompareTol(a, b, DefaultRelTol, Epsilon)
}

// CompareTol 使用给定容差对 a、b 做三向比较。
// 容差为负返回 [ErrNegativeTolerance]，参数为 NaN 返回 [ErrNaNCompare]。
func CompareTol(a, b, relTol, absTol float64) (int, error) {
	if err := validateTolerances(relTol, absTol); err != nil {
		return 0, err
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, fmt.Errorf("%w: Compare(%v, %v)", ErrNaNCompare, a, b)
	}
	eq, err := ApproxEqualTol(a, b, relTol, absTol)
	if err != nil {
		return 0, err
	}
	if eq {
		return 0, nil
	}
	// 此处 a != b 且均非 NaN，a-b 不会是 0 或 NaN
	// （同号无穷已被 ApproxEqualTol 判为相等），Sign 只会返回 ±1。
	return Sign(a-b, true), nil
}

// validateTolerances 校验容差非负。
func validateTolerances(relTol, absTol float64) error {
	if relTol < 0 {
		return fmt.Errorf("%w: relTol %v", ErrNegativeTolerance, relTol)
	}
	if absTol < 0 {
		return fmt.Errorf("%w: absTol %v", ErrNegativeTolerance, absTol)
	}
	return nil
}
