package xfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHex(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"positive_zero", 0.0, "0000000000000000"},
		{"negative_zero", negZero, "8000000000000000"},
		{"one", 1.0, "3ff0000000000000"},
		{"one_point_five", 1.5, "3ff8000000000000"},
		{"minus_two", -2.0, "c000000000000000"},
		{"positive_inf", math.Inf(1), "7ff0000000000000"},
		{"negative_inf", math.Inf(-1), "fff0000000000000"},
		{"smallest_subnormal", math.SmallestNonzeroFloat64, "0000000000000001"},
		{"max_float", math.MaxFloat64, "7fefffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHex(tt.x)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 16)
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want float64
	}{
		{"one", "3ff0000000000000", 1.0},
		{"uppercase", "3FF8000000000000", 1.5},
		{"minus_two", "c000000000000000", -2.0},
		{"zero", "0000000000000000", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.s)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(tt.want), math.Float64bits(got))
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"too_short", "3ff"},
		{"too_long", "3ff80000000000000"},
		{"with_prefix", "0x3ff800000000000"},
		{"non_hex", "3ffg000000000000"},
		{"signed", "-3ff800000000000"},
		{"spaces", " 3ff800000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.s)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestToHexParseHexRoundTrip(t *testing.T) {
	negZero := math.Copysign(0, -1)

	values := []float64{
		0, negZero, 1, -1, 1.5, math.Pi, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), 1e-300,
	}

	for _, x := range values {
		got, err := ParseHex(ToHex(x))
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(x), math.Float64bits(got), "x=%v", x)
	}
}

func TestToHexDistinguishesSignedZero(t *testing.T) {
	assert.NotEqual(t, ToHex(0), ToHex(math.Copysign(0, -1)))
}
