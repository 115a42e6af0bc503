package xfloat

import (
	"fmt"
	"math"
	"unsafe"
)

// IEEE-754 双精度布局常量。
const (
	// TotalWidth 是 float64 的总位宽。
	TotalWidth = 64

	// ExponentWidth 是偏移指数域的位宽。
	ExponentWidth = 11

	// FractionWidth 是尾数（小数）域的位宽。
	FractionWidth = 52

	// ExponentBias 是指数偏移量：真实指数 = 存储指数 - ExponentBias。
	ExponentBias = 1023
)

const (
	signShift     = TotalWidth - 1
	exponentShift = FractionWidth
	exponentMask  = 1<<ExponentWidth - 1
	fractionMask  = 1<<FractionWidth - 1

	// maxExponent 是存储指数域的最大值（全 1，表示 Inf/NaN）。
	maxExponent = exponentMask
)

// 编译期断言：位操作要求宿主提供 8 字节宽的 64 位整数。
// Go 在所有受支持平台上保证 uint64，缺失 64 位整数的构建不可能存在。
var _ [8]byte = [unsafe.Sizeof(uint64(0))]byte{}

// Fields 是 float64 的位域分解结果。
// 不变式：Bits == Sign<<63 | Exponent<<52 | Fraction，
// 由 [Disassemble] 构造的 Fields 总满足该等式。
type Fields struct {
	// Bits 是完整的 64 位原始模式。
	Bits uint64

	// Sign 是符号位（bit 63），0 或 1。
	Sign uint64

	// Exponent 是偏移指数域（bits 62..52），[0, 2047]。
	Exponent uint64

	// Fraction 是尾数域（bits 51..0），[0, 2^52-1]。
	Fraction uint64
}

// Unbiased 返回去偏移后的真实指数（存储指数 - 1023）。
// 对零值和次正规数返回 -1023，对 Inf/NaN 返回 1024。
func (f Fields) Unbiased() int {
	return int(f.Exponent) - ExponentBias
}

// Compose 由三个位域重新组合出 float64。
// 等价于 [Assemble](f.Sign, f.Exponent, f.Fraction)，
// 分量超出声明宽度时返回 [ErrFieldRange]。
func (f Fields) Compose() (float64, error) {
	return Assemble(f.Sign, f.Exponent, f.Fraction)
}

// ToBits 返回 x 的 64 位原始模式。
// 这是位级重新解释而非数值转换：ToBits(2.0) 与整数 2 的二进制表示无关。
func ToBits(x float64) uint64 {
	return math.Float64bits(x)
}

// FromBits 是 [ToBits] 的逆操作，把 64 位模式重新解释为 float64。
func FromBits(bits uint64) float64 {
	return math.Float64frombits(bits)
}

// Disassemble 把 x 分解为 {符号, 指数, 尾数} 三个位域。
// 纯函数，对包括 NaN、±Inf、±0.0 在内的任意输入均有定义。
func Disassemble(x float64) Fields {
	bits := math.Float64bits(x)
	return Fields{
		Bits:     bits,
		Sign:     bits >> signShift,
		Exponent: bits >> exponentShift & exponentMask,
		Fraction: bits & fractionMask,
	}
}

// Assemble 由三个位域组合出 float64。
// sign 必须为 0 或 1，exponent 在 [0, 2047]，fraction 在 [0, 2^52-1]，
// 否则返回 [ErrFieldRange]。
//
// 对任意非 NaN 值满足 Assemble(Disassemble(x)) == x（位级相等）。
// NaN 例外：组合出的 NaN 位模式经过后续算术运算可能被运行时
// 规范化为单一模式，NaN 载荷的保真度依赖平台。
func Assemble(sign, exponent, fraction uint64) (float64, error) {
	if sign > 1 {
		return 0, fmt.Errorf("%w: sign %d (must be 0 or 1)", ErrFieldRange, sign)
	}
	if exponent > maxExponent {
		return 0, fmt.Errorf("%w: exponent %d (must be <= %d)", ErrFieldRange, exponent, uint64(maxExponent))
	}
	if fraction > fractionMask {
		return 0, fmt.Errorf("%w: fraction %d (must be <= %d)", ErrFieldRange, fraction, uint64(fractionMask))
	}
	return math.Float64frombits(sign<<signShift | exponent<<exponentShift | fraction), nil
}
