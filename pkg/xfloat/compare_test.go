package xfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxEqual(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"classic_rounding", 0.1 + 0.2, 0.3, true},
		{"signed_zeros", 0.0, negZero, true},
		{"adjacent_floats", 1.0, Next(1.0), true},
		{"clearly_different", 1.0, 2.0, false},
		{"relative_at_scale", 1e15, 1e15 + 1, true},
		{"relative_too_far", 1.0, 1.0 + 1e-8, false},

		// NaN 与任何值都不接近，包括它自身
		{"nan_self", math.NaN(), math.NaN(), false},
		{"nan_left", math.NaN(), 1.0, false},
		{"nan_right", 1.0, math.NaN(), false},

		// 无穷只与同号无穷相等
		{"inf_same_sign", math.Inf(1), math.Inf(1), true},
		{"neg_inf_same_sign", math.Inf(-1), math.Inf(-1), true},
		{"inf_opposite", math.Inf(1), math.Inf(-1), false},
		{"inf_vs_finite", math.Inf(1), math.MaxFloat64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApproxEqual(tt.a, tt.b))
			// 按构造对称
			assert.Equal(t, tt.want, ApproxEqual(tt.b, tt.a))
		})
	}
}

func TestApproxEqualTol(t *testing.T) {
	tests := []struct {
		name           string
		a, b           float64
		relTol, absTol float64
		want           bool
	}{
		{"loose_abs", 1.0, 1.05, 0, 0.1, true},
		{"tight_abs", 1.0, 1.05, 0, 0.01, false},
		{"loose_rel", 100.0, 101.0, 0.02, 0, true},
		{"tight_rel", 100.0, 101.0, 0.001, 0, false},
		{"zero_tolerances_equal", 1.5, 1.5, 0, 0, true},
		{"zero_tolerances_unequal", 1.5, Next(1.5), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApproxEqualTol(tt.a, tt.b, tt.relTol, tt.absTol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApproxEqualTolNegativeTolerance(t *testing.T) {
	_, err := ApproxEqualTol(1, 1, -1e-9, 0)
	assert.ErrorIs(t, err, ErrNegativeTolerance)

	_, err = ApproxEqualTol(1, 1, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeTolerance)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{"less", 1.0, 2.0, -1},
		{"greater", 2.0, 1.0, 1},
		{"equal", 1.5, 1.5, 0},
		{"approx_equal", 0.1 + 0.2, 0.3, 0},
		{"inf_vs_finite", math.Inf(1), 1.0, 1},
		{"neg_inf_vs_finite", math.Inf(-1), 1.0, -1},
		{"opposite_infinities", math.Inf(-1), math.Inf(1), -1},
		{"same_infinities", math.Inf(1), math.Inf(1), 0},
		{"signed_zeros", math.Copysign(0, -1), 0.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// 反对称：交换参数时符号取反
			flipped, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, flipped)
		})
	}
}

func TestCompareNaN(t *testing.T) {
	_, err := Compare(math.NaN(), 1.0)
	assert.ErrorIs(t, err, ErrNaNCompare)

	_, err = Compare(1.0, math.NaN())
	assert.ErrorIs(t, err, ErrNaNCompare)

	_, err = Compare(math.NaN(), math.NaN())
	assert.ErrorIs(t, err, ErrNaNCompare)
}

func TestCompareTolNegativeTolerance(t *testing.T) {
	_, err := CompareTol(1, 2, -1, 0)
	assert.ErrorIs(t, err, ErrNegativeTolerance)

	// 容差校验先于 NaN 校验
	_, err = CompareTol(math.NaN(), 2, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeTolerance)
}

func TestCompareZeroIffApproxEqual(t *testing.T) {
	pairs := [][2]float64{
		{1, 1}, {1, 2}, {0.1 + 0.2, 0.3}, {1e15, 1e15 + 1},
		{-1, 1}, {0, math.Copysign(0, -1)}, {math.Inf(1), math.Inf(1)},
		{math.Inf(1), 0}, {1, 1 + 1e-8},
	}

	for _, p := range pairs {
		got, err := Compare(p[0], p[1])
		require.NoError(t, err)
		assert.Contains(t, []int{-1, 0, 1}, got)
		assert.Equal(t, ApproxEqual(p[0], p[1]), got == 0, "a=%v b=%v", p[0], p[1])
	}
}
