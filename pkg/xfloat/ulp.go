package xfloat

import "math"

// ULP 返回 x 所在量级上到下一个可表示 float64 的精确间距
// （unit in the last place）。
//
// 采用精确定义 Next(|x|) - |x|，而非常见的 |x| * ε 近似
// （后者仅渐近正确，在 2 的幂附近会偏差一倍）。
//
// 特殊情形：
//   - ULP(NaN) = NaN
//   - ULP(±Inf) = +Inf
//   - ULP(±0.0) = 最小正次正规数（math.SmallestNonzeroFloat64）
//   - ULP(math.MaxFloat64) = +Inf（上方相邻值是 +Inf）
//
// 对任意有限 x 满足 ULP(x) > 0 且 ULP(-x) == ULP(x)。
func ULP(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	}
	ax := math.Abs(x)
	return Next(ax) - ax
}
