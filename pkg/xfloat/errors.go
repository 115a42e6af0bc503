package xfloat

import "errors"

var (
	// ErrFieldRange 表示 Assemble 的位域分量超出其声明宽度。
	// sign 必须为 0 或 1，exponent 必须在 [0, 2047]，
	// fraction 必须在 [0, 2^52-1]。
	ErrFieldRange = errors.New("xfloat: bit field out of range")

	// ErrNegativeTolerance 表示容差参数为负数。
	// relTol 和 absTol 均必须 >= 0。
	ErrNegativeTolerance = errors.New("xfloat: negative tolerance")

	// ErrNaNCompare 表示 Compare/CompareTol 收到 NaN 参数。
	// NaN 不存在全序关系，三向比较对其报错而非返回哨兵值；
	// ApproxEqual 对 NaN 返回 false 而非错误，这一不对称是刻意设计。
	ErrNaNCompare = errors.New("xfloat: cannot order NaN")

	// ErrInvalidRange 表示随机数区间无效：
	// 边界为 NaN/±Inf，或 min > max。
	ErrInvalidRange = errors.New("xfloat: invalid range")

	// ErrEntropyUnavailable 表示系统熵源不可用（crypto/rand 读取失败）。
	// 随机数生成函数返回此错误而非继续使用低质量随机源。
	ErrEntropyUnavailable = errors.New("xfloat: entropy source unavailable")

	// ErrRejectionBudget 表示拒绝采样超过安全上限仍未命中。
	// 极窄的跨指数区间可能把接受率压得很低，
	// 上限把病态区间的无限自旋转换为可诊断的错误。
	ErrRejectionBudget = errors.New("xfloat: rejection sampling budget exceeded")

	// ErrInvalidHex 表示 ParseHex 的输入不是 16 位十六进制字符串。
	ErrInvalidHex = errors.New("xfloat: invalid hex encoding")
)
