package xfloat

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
)

// maxRejections 是拒绝采样的迭代上限。
// 典型区间期望 O(1) 次命中；极窄的跨指数区间可能把接受率压低，
// 超限返回 [ErrRejectionBudget] 而非无限自旋。
const maxRejections = 4096

// RandFull 在全部可表示 float64 空间上做拒绝采样：
// 重复抽取 64 位随机数并重新解释为浮点数，
// 直到结果是有限、非 NaN、非 -0.0 的值。
//
// 随机源为 crypto/rand，熵源不可用时返回 [ErrEntropyUnavailable]。
// 注意可表示值的密度随量级变化，输出在数值上远非均匀：
// 约半数样本的量级会落在 [1e-154, 1e154) 之外。
func RandFull() (float64, error) {
	return randFull(cryptorand.Reader)
}

// Rand 返回 [min, max] 内的随机可表示 float64。
//
// 校验 min <= max 且两者有限，否则返回 [ErrInvalidRange]；
// min == max 时直接返回该值（-0.0 归一化为 +0.0）。
//
// 采样按位域进行：分解 min 和 max 的 {符号, 指数, 尾数}，
// 同号时固定符号并把指数收窄到两者的指数区间，
// 同号同指数时进一步把尾数收窄到两者的尾数区间，
// 否则在各域的完整合法范围内抽取。组合出候选值后拒绝，
// 直到它有限、非特殊值且落在 [min, max] 内。
//
// 可表示值在零附近更密集，因此即使区间内每个可表示值都可达，
// 输出分布也不是均匀的。等概率采样用 [RandUniform]。
func Rand(min, max float64) (float64, error) {
	return randBetween(cryptorand.Reader, min, max)
}

// RandUniform 返回 [min, max] 内等概率的随机 float64。
//
// 校验与 [Rand] 相同。步长取区间内最粗的 ULP：
// step = ULP(max(|min|, |max|))，steps = round((max-min)/step)，
// 于是 steps+1 个等距网格点各自映射到不同的可表示浮点数，
// 不会有两个网格点塌缩到同一个值。在 [0, steps] 内均匀抽取
// 下标 idx，返回 min + (idx/steps)*(max-min)，每个结果概率相同。
//
// 代价是只能命中网格点：区间内网格之外的可表示值不可达
// （与 [Rand] 的全覆盖、非均匀恰好相反）。
func RandUniform(min, max float64) (float64, error) {
	return randUniform(cryptorand.Reader, min, max)
}

// validateRange 校验随机数区间：两端有限且 min <= max。
func validateRange(min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) {
		return fmt.Errorf("%w: min %v is not finite", ErrInvalidRange, min)
	}
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return fmt.Errorf("%w: max %v is not finite", ErrInvalidRange, max)
	}
	if min > max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, min, max)
	}
	return nil
}

// randUint64 从 src 读取 8 字节并组装为 uint64。
// 读取失败返回 [ErrEntropyUnavailable]。
func randUint64(src io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// randUint64n 返回 [0, n) 内的均匀随机数，n 必须 >= 1。
// 使用掩码拒绝法：按覆盖 n-1 的最小 2 的幂截取随机位，
// 超出 n 则重抽，每轮接受概率 > 1/2。
func randUint64n(src io.Reader, n uint64) (uint64, error) {
	if n == 1 {
		return 0, nil
	}
	mask := uint64(1)<<bits.Len64(n-1) - 1
	for range maxRejections {
		v, err := randUint64(src)
		if err != nil {
			return 0, err
		}
		if v &= mask; v < n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: uniform draw below %d", ErrRejectionBudget, n)
}

// randFieldIn 返回 [lo, hi] 内的均匀随机数。
func randFieldIn(src io.Reader, lo, hi uint64) (uint64, error) {
	if lo == hi {
		return lo, nil
	}
	v, err := randUint64n(src, hi-lo+1)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// randFull 是 [RandFull] 的实现，随机源可注入以便测试。
func randFull(src io.Reader) (float64, error) {
	for range maxRejections {
		b, err := randUint64(src)
		if err != nil {
			return 0, err
		}
		x := math.Float64frombits(b)
		if IsSpecial(x) {
			continue
		}
		return x, nil
	}
	return 0, fmt.Errorf("%w: full-range draw", ErrRejectionBudget)
}

// randBetween 是 [Rand] 的实现，随机源可注入以便测试。
func randBetween(src io.Reader, min, max float64) (float64, error) {
	if err := validateRange(min, max); err != nil {
		return 0, err
	}
	if min == max {
		return NormalizeZero(min), nil
	}

	lo, hi := Disassemble(min), Disassemble(max)

	// 位域搜索空间，默认各域的完整合法范围。
	signLo, signHi := uint64(0), uint64(1)
	expLo, expHi := uint64(0), uint64(maxExponent)
	fracLo, fracHi := uint64(0), uint64(fractionMask)

	if lo.Sign == hi.Sign {
		signLo, signHi = lo.Sign, lo.Sign
		expLo, expHi = lo.Exponent, hi.Exponent
		if expLo > expHi {
			expLo, expHi = expHi, expLo
		}
		if lo.Exponent == hi.Exponent {
			fracLo, fracHi = lo.Fraction, hi.Fraction
			if fracLo > fracHi {
				fracLo, fracHi = fracHi, fracLo
			}
		}
	}

	for range maxRejections {
		s, err := randFieldIn(src, signLo, signHi)
		if err != nil {
			return 0, err
		}
		e, err := randFieldIn(src, expLo, expHi)
		if err != nil {
			return 0, err
		}
		f, err := randFieldIn(src, fracLo, fracHi)
		if err != nil {
			return 0, err
		}
		x := math.Float64frombits(s<<signShift | e<<exponentShift | f)
		if IsSpecial(x) || x < min || x > max {
			continue
		}
		return x, nil
	}
	return 0, fmt.Errorf("%w: Rand(%v, %v)", ErrRejectionBudget, min, max)
}

// randUniform 是 [RandUniform] 的实现，随机源可注入以便测试。
func randUniform(src io.Reader, min, max float64) (float64, error) {
	if err := validateRange(min, max); err != nil {
		return 0, err
	}
	if min == max {
		return NormalizeZero(min), nil
	}

	step := ULP(math.Max(math.Abs(min), math.Abs(max)))
	if math.IsInf(step, 0) {
		// 量级触及 math.MaxFloat64 时 ULP 为 +Inf，网格退化为单点。
		return min, nil
	}

	span := max - min
	var steps float64
	if math.IsInf(span, 0) {
		// max-min 溢出时分别折算两端的步数，和不超过 2^54。
		steps = math.Round(max/step - min/step)
	} else {
		steps = math.Round(span / step)
	}
	if steps < 1 {
		// 区间不足一个步长，网格只剩 min 一个点。
		return min, nil
	}

	idx, err := randUint64n(src, uint64(steps)+1)
	if err != nil {
		return 0, err
	}
	frac := float64(idx) / steps
	if math.IsInf(span, 0) {
		return min*(1-frac) + max*frac, nil
	}
	return min + frac*span, nil
}
