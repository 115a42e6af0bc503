package xfloat

import (
	"fmt"
	"strconv"
	"strings"
)

// hexDigits 是 ToHex 输出的定长字符数（64 位 / 4 位每字符）。
const hexDigits = TotalWidth / 4

// ToHex 返回 x 的 64 位模式的 16 字符小写十六进制编码，
// 高位字节在前，前导零补齐。
//
// 每个不同的位模式映射到不同的字符串，+0.0 与 -0.0 可区分：
//
//	ToHex(0)                  // "0000000000000000"
//	ToHex(math.Copysign(0,-1)) // "8000000000000000"
//
// NaN 按宿主规范化后的单一位模式编码。
func ToHex(x float64) string {
	var buf [hexDigits]byte
	s := strconv.AppendUint(buf[:0], ToBits(x), 16)
	if len(s) == hexDigits {
		return string(s)
	}
	return strings.Repeat("0", hexDigits-len(s)) + string(s)
}

// ParseHex 解析 [ToHex] 的输出，还原 float64。
// 输入必须恰好 16 个十六进制字符（大小写均可，不带 0x 前缀），
// 否则返回 [ErrInvalidHex]。
func ParseHex(s string) (float64, error) {
	if len(s) != hexDigits {
		return 0, fmt.Errorf("%w: %q (want %d hex chars)", ErrInvalidHex, s, hexDigits)
	}
	bits, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return FromBits(bits), nil
}
