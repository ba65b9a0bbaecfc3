// Package arith implements the widened numeric kernels behind range
// conversion: clamping, exact extent computation and the linear rescale
// itself.
//
// Conversions run in one of two arithmetic classes. If either side has a
// floating-point value type, every intermediate is a float64, mirroring the
// promotion a mixed expression would undergo in C-family arithmetic. If both
// sides are integral, intermediates are exact non-negative uint64 values and
// division truncates toward zero. Results are exact as long as
// delta * dstExtent fits in 64 bits; past that they are silently wrong, which
// is an accepted caller precondition rather than a runtime check.
package arith

import (
	"golang.org/x/exp/constraints"
)

// Number is the arithmetic constraint shared with the public package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp saturates v to [lo, hi].
func Clamp[V Number](v, lo, hi V) V {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bits returns the two's-complement representation of v modulo 2^64.
// Signed values are sign-extended first, so differences of Bits values are
// exact for any 64-bit-representable range.
func Bits[V Number](v V) uint64 {
	return uint64(int64(v))
}

// Delta returns hi - lo as an exact non-negative uint64. It requires
// lo <= hi; wraparound in the subtraction cancels the sign extension, so the
// result is exact even for full-width ranges such as [MinInt64, MaxInt64].
func Delta[V Number](hi, lo V) uint64 {
	return Bits(hi) - Bits(lo)
}

// RescaleInt maps bounded, already clamped into [srcMin, srcMin+srcExt], onto
// the destination range starting at dstMin with extent dstExt. srcExt must be
// non-zero; callers handle degenerate sources before reaching the kernel.
func RescaleInt[T, U Number](bounded, srcMin T, srcExt uint64, dstMin U, dstExt uint64) U {
	delta := Bits(bounded) - Bits(srcMin)
	q := delta * dstExt / srcExt
	return U(Bits(dstMin) + q)
}

// RescaleFloat is the float64 analogue of RescaleInt. Results at or past a
// destination bound resolve to the typed bound itself rather than being
// narrowed from float64: mathematically the result already lies within the
// bounds, but rounding can push it past one, and float64(MaxInt64) and
// float64(MaxUint64) round up to 2^63 and 2^64 — above the destination type —
// so narrowing a pinned float64 would still be an out-of-range conversion for
// full-range 64-bit destinations.
func RescaleFloat[T, U Number](bounded, srcMin, srcMax T, dstMin, dstMax U) U {
	scaled := (float64(bounded) - float64(srcMin)) * (float64(dstMax) - float64(dstMin))
	r := float64(dstMin) + scaled/(float64(srcMax)-float64(srcMin))
	if r >= float64(dstMax) {
		return dstMax
	}
	if r <= float64(dstMin) {
		return dstMin
	}
	return U(r)
}
