package xfloat

import "math"

const (
	// maxConsecutiveInteger 是连续整数全部精确可表示的最大量级（2^53）。
	// 超过它之后相邻可表示浮点数的间距大于 1，整数开始出现空洞。
	maxConsecutiveInteger = 1 << 53

	// minNormal 是最小的正规数（指数域为 1、尾数为 0）。
	// 量级低于它的非零值为次正规数。
	minNormal = 0x1p-1022
)

// IsNegativeZero 报告 x 是否为 -0.0（符号位为 1 的零）。
// IEEE-754 中 -0.0 == +0.0 成立，区分两者只能看符号位。
func IsNegativeZero(x float64) bool {
	return x == 0 && math.Signbit(x)
}

// IsPositiveZero 报告 x 是否为 +0.0（符号位为 0 的零）。
func IsPositiveZero(x float64) bool {
	return x == 0 && !math.Signbit(x)
}

// IsNegative 报告 x 是否带负号。
// -0.0 计为负，-Inf 计为负，NaN 既不正也不负。
func IsNegative(x float64) bool {
	return !math.IsNaN(x) && math.Signbit(x)
}

// IsPositive 报告 x 是否带正号。
// +0.0 计为正，+Inf 计为正，NaN 既不正也不负。
func IsPositive(x float64) bool {
	return !math.IsNaN(x) && !math.Signbit(x)
}

// IsSpecial 报告 x 是否为特殊值：NaN、-0.0、+Inf 或 -Inf。
// +0.0 不是特殊值。
func IsSpecial(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0) || IsNegativeZero(x)
}

// IsSubnormal 报告 x 是否为次正规数（非零且量级小于最小正规数）。
func IsSubnormal(x float64) bool {
	return x != 0 && !math.IsNaN(x) && math.Abs(x) < minNormal
}

// IsExactInteger 报告 x 是否为精确可表示的整数：
// 有限、无小数部分、且 |x| <= 2^53。
// 2^53 以内每个连续整数都有精确的 float64 表示，超出后不再保证。
func IsExactInteger(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return x == math.Trunc(x) && math.Abs(x) <= maxConsecutiveInteger
}

// Sign 返回 x 的符号，结果只会是 -1、0 或 +1。
//
// zeroIsZero 控制零的符号语义：
//   - true:  ±0.0 均返回 0（数学符号）
//   - false: 按符号位判定，-0.0 返回 -1，+0.0 返回 +1（符号拷贝语义）
//
// NaN 无符号，总是返回 0。
func Sign(x float64, zeroIsZero bool) int {
	if math.IsNaN(x) {
		return 0
	}
	if zeroIsZero && x == 0 {
		return 0
	}
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// NormalizeZero 把 -0.0 归一化为 +0.0，其余值原样返回。
// 用于消除签名零在 map key、序列化等场景中造成的歧义。
func NormalizeZero(x float64) float64 {
	if IsNegativeZero(x) {
		return 0
	}
	return x
}

// Classify 返回 x 的完整分类信息。
// 各标志不互斥，例如 -0.0 同时满足 IsNegativeZero、IsNegative、
// IsSpecial 和 IsExactInteger。
func Classify(x float64) Classification {
	return Classification{
		IsNaN:          math.IsNaN(x),
		IsPositiveInf:  math.IsInf(x, 1),
		IsNegativeInf:  math.IsInf(x, -1),
		IsPositiveZero: IsPositiveZero(x),
		IsNegativeZero: IsNegativeZero(x),
		IsSubnormal:    IsSubnormal(x),
		IsNegative:     IsNegative(x),
		IsPositive:     IsPositive(x),
		IsSpecial:      IsSpecial(x),
		IsExactInteger: IsExactInteger(x),
	}
}

// Classification 包含 float64 的各种分类标志。
//
// 设计决策: 使用扁平的导出字段而非位标志，调用方可直接访问
// c.IsNaN，且值类型结构体新增字段保持向后兼容。
type Classification struct {
	// IsNaN 表示是否为 NaN。
	IsNaN bool

	// IsPositiveInf 表示是否为 +Inf。
	IsPositiveInf bool

	// IsNegativeInf 表示是否为 -Inf。
	IsNegativeInf bool

	// IsPositiveZero 表示是否为 +0.0。
	IsPositiveZero bool

	// IsNegativeZero 表示是否为 -0.0。
	IsNegativeZero bool

	// IsSubnormal 表示是否为次正规数。
	IsSubnormal bool

	// IsNegative 表示符号位语义下是否为负（-0.0 为负，NaN 为 false）。
	IsNegative bool

	// IsPositive 表示符号位语义下是否为正（+0.0 为正，NaN 为 false）。
	IsPositive bool

	// IsSpecial 表示是否为特殊值（NaN、-0.0、±Inf）。
	IsSpecial bool

	// IsExactInteger 表示是否为精确可表示的整数。
	IsExactInteger bool
}

// String 返回分类的字符串标签。
// 越特殊的分类越靠前，第一个匹配的即为结果。
func (c Classification) String() string {
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsNaN, "nan"},
		{c.IsPositiveInf, "positive-infinity"},
		{c.IsNegativeInf, "negative-infinity"},
		{c.IsNegativeZero, "negative-zero"},
		{c.IsPositiveZero, "positive-zero"},
		{c.IsSubnormal, "subnormal"},
	}
	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	return "normal"
}
