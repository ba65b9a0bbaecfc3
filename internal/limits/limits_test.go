package limits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	assert.True(t, IsFloat[float32]())
	assert.True(t, IsFloat[float64]())
	assert.False(t, IsFloat[int]())
	assert.False(t, IsFloat[uint8]())

	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[int64]())
	assert.True(t, IsSigned[float64]())
	assert.False(t, IsSigned[uint8]())
	assert.False(t, IsSigned[uint64]())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, uint(8), Width[uint8]())
	assert.Equal(t, uint(16), Width[int16]())
	assert.Equal(t, uint(32), Width[float32]())
	assert.Equal(t, uint(64), Width[float64]())
	assert.Equal(t, uint(64), Width[uint64]())
}

func TestMinMaxOf(t *testing.T) {
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, uint8(255), MaxOf[uint8]())

	assert.Equal(t, int8(-128), MinOf[int8]())
	assert.Equal(t, int8(127), MaxOf[int8]())

	assert.Equal(t, int16(math.MinInt16), MinOf[int16]())
	assert.Equal(t, int16(math.MaxInt16), MaxOf[int16]())

	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())

	assert.Equal(t, uint64(0), MinOf[uint64]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())

	assert.Equal(t, float32(-math.MaxFloat32), MinOf[float32]())
	assert.Equal(t, float32(math.MaxFloat32), MaxOf[float32]())

	assert.Equal(t, -math.MaxFloat64, MinOf[float64]())
	assert.Equal(t, math.MaxFloat64, MaxOf[float64]())
}

func TestBitRanges(t *testing.T) {
	assert.Equal(t, uint64(1), UnsignedMax(1))
	assert.Equal(t, uint64(127), UnsignedMax(7))
	assert.Equal(t, uint64(4095), UnsignedMax(12))
	assert.Equal(t, uint64(math.MaxUint64), UnsignedMax(64))

	assert.Equal(t, int64(0), SignedMax(1))
	assert.Equal(t, int64(127), SignedMax(8))
	assert.Equal(t, int64(2047), SignedMax(12))
	assert.Equal(t, int64(math.MaxInt64), SignedMax(64))
}
