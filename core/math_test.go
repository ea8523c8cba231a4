package core

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		in, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{89.95, -89.9, 89.9, 89.9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.in, tt.lo, tt.hi))
	}
	assert.Equal(t, 3, Clamp(7, 1, 3))
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 10.0, Wrap(float32(370), 360), 1e-4)
	assert.InDelta(t, 350.0, Wrap(float32(-10), 360), 1e-4)
	assert.InDelta(t, 0.0, Wrap(float32(360), 360), 1e-4)
	assert.InDelta(t, 42.0, Wrap(float32(42), 360), 1e-4)
	assert.Equal(t, float32(0), Wrap(float32(-1e-9), 360))
}

func TestWrapLargeAndNonFinite(t *testing.T) {
	for _, f := range []float32{1e10, -1e10, math.MaxFloat32, -math.MaxFloat32} {
		got := Wrap(f, 360)
		assert.GreaterOrEqual(t, got, float32(0), "%g", f)
		assert.Less(t, got, float32(360), "%g", f)
	}
	// 1e10 is exactly representable; 1e10 mod 360 = 280
	assert.Equal(t, float32(280), Wrap(float32(1e10), 360))

	assert.True(t, math32.IsInf(Wrap(math32.Inf(1), 360), 1))
	assert.True(t, math32.IsInf(Wrap(math32.Inf(-1), 360), -1))
	assert.True(t, math32.IsNaN(Wrap(math32.NaN(), 360)))
	assert.Equal(t, float32(5), Wrap(float32(5), 0))
}
