package xfloat

import "math"

// Next 返回大于 x 的最近可表示 float64。
//
// 特殊情形：
//   - NaN → NaN
//   - -0.0 → +0.0（跨越符号零边界）
//   - +Inf → +Inf（上方没有可表示值）
//   - -Inf → 最小有限值（-math.MaxFloat64）
//
// 对任意不与 ±Inf 相邻的有限 x，满足 Next(Prev(x)) == x。
func Next(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case IsNegativeZero(x):
		return 0
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	}
	return stepBits(x, 1)
}

// Prev 返回小于 x 的最近可表示 float64，是 [Next] 的镜像。
//
// 特殊情形：
//   - NaN → NaN
//   - +0.0 → -0.0（跨越符号零边界）
//   - -Inf → -Inf（下方没有可表示值）
//   - +Inf → 最大有限值（math.MaxFloat64）
func Prev(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case IsPositiveZero(x):
		return math.Copysign(0, -1)
	case math.IsInf(x, -1):
		return x
	case math.IsInf(x, 1):
		return math.MaxFloat64
	}
	return stepBits(x, -1)
}

// stepBits 把 x 的位模式按符号-数值布局移动 dir（+1 向上、-1 向下）个相邻值。
//
// 把位模式重新解释为带符号 64 位整数后：符号位恰好是最高位，
// 因此该整数对所有非负浮点数随浮点值单调递增，
// 对所有负浮点数随浮点量级增大而单调递减（符号-数值布局，非二进制补码）。
// 于是非负数 +1/-1 即向上/向下，负数方向相反。
//
// 调用方已排除 NaN、±Inf 和需要跨零的情形，
// 最大有限值 ±math.MaxFloat64 经普通步进自然落到相邻的 ±Inf。
func stepBits(x float64, dir int64) float64 {
	i := int64(math.Float64bits(x))
	if i >= 0 {
		i += dir
	} else {
		i -= dir
	}
	return math.Float64frombits(uint64(i))
}
