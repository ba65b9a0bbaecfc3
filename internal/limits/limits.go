// Package limits derives representable-range information for native numeric
// types at the type-parameter level, without reflection.
package limits

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of types this package can describe.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether V is a floating-point type.
func IsFloat[V Number]() bool {
	return V(1)/V(2) != 0
}

// IsSigned reports whether V can represent negative values.
func IsSigned[V Number]() bool {
	var zero V
	return zero-1 < 0
}

// Width returns the size of V in bits.
func Width[V Number]() uint {
	var v V
	return uint(unsafe.Sizeof(v)) * 8
}

// MaxOf returns the largest representable value of V.
func MaxOf[V Number]() V {
	switch {
	case IsFloat[V]():
		// Converting the untyped math constants to V directly is not legal
		// for a type parameter, so go through a float64 value.
		f := math.MaxFloat64
		if Width[V]() == 32 {
			f = math.MaxFloat32
		}
		return V(f)
	case IsSigned[V]():
		return V(UnsignedMax(int(Width[V]()) - 1))
	default:
		return V(UnsignedMax(int(Width[V]())))
	}
}

// MinOf returns the smallest representable value of V. For floating-point
// types this is the negated maximum, not the smallest positive normal.
func MinOf[V Number]() V {
	switch {
	case IsFloat[V]():
		f := math.MaxFloat64
		if Width[V]() == 32 {
			f = math.MaxFloat32
		}
		return V(-f)
	case IsSigned[V]():
		return V(int64(-1) << (Width[V]() - 1))
	default:
		return V(0)
	}
}

// UnsignedMax returns 2^bits - 1. A shift count of 64 wraps to the full
// uint64 range.
func UnsignedMax(bits int) uint64 {
	return uint64(1)<<uint(bits) - 1
}

// SignedMax returns 2^(bits-1) - 1, the largest value of a signed number
// with the given width.
func SignedMax(bits int) int64 {
	return int64(uint64(1)<<uint(bits-1) - 1)
}
