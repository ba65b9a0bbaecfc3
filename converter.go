package rangecast

import (
	"github.com/hupe1980/rangecast/internal/arith"
	"github.com/hupe1980/rangecast/internal/limits"
)

// Converter performs repeated conversions between two fixed domains. It
// resolves the arithmetic class, the extents and the identity check once at
// construction, so per-value cost is a clamp and one multiply/divide. Like
// Interval it is an immutable value type and safe for concurrent use.
type Converter[T, U Number] struct {
	src Interval[T]
	dst Interval[U]

	float      bool
	identity   bool
	degenerate bool

	srcExt uint64
	dstExt uint64
}

// NewConverter builds a converter from the src domain into the dst domain.
func NewConverter[T, U Number](src Interval[T], dst Interval[U]) Converter[T, U] {
	c := Converter[T, U]{
		src:        src,
		dst:        dst,
		float:      limits.IsFloat[T]() || limits.IsFloat[U](),
		degenerate: src.min == src.max,
	}
	if !c.float {
		c.srcExt = arith.Delta(src.max, src.min)
		c.dstExt = arith.Delta(dst.max, dst.min)
	}
	c.identity = sameDomain(src, dst)
	return c
}

// Src returns the source domain.
func (c Converter[T, U]) Src() Interval[T] { return c.src }

// Dst returns the destination domain.
func (c Converter[T, U]) Dst() Interval[U] { return c.dst }

// Convert clamps v to the source domain and linearly rescales it into the
// destination domain. Identical domains on both sides take a fast path that
// clamps and returns the value with no arithmetic, so in-range values pass
// through bit-for-bit with zero rounding drift. A degenerate source domain
// (min == max) maps every input to the destination minimum.
func (c Converter[T, U]) Convert(v T) U {
	bounded := arith.Clamp(v, c.src.min, c.src.max)
	if c.identity {
		return U(bounded)
	}
	if c.degenerate {
		return c.dst.min
	}
	if c.float {
		return arith.RescaleFloat(bounded, c.src.min, c.src.max, c.dst.min, c.dst.max)
	}
	return arith.RescaleInt(bounded, c.src.min, c.srcExt, c.dst.min, c.dstExt)
}

// sameDomain reports whether the two domains are the same domain: equal
// bounds carried in the same representation class, making the conversion an
// exact identity for every in-range value.
func sameDomain[T, U Number](src Interval[T], dst Interval[U]) bool {
	if limits.IsFloat[T]() != limits.IsFloat[U]() ||
		limits.IsSigned[T]() != limits.IsSigned[U]() ||
		limits.Width[T]() != limits.Width[U]() {
		return false
	}
	if limits.IsFloat[T]() {
		return float64(src.min) == float64(dst.min) && float64(src.max) == float64(dst.max)
	}
	return arith.Bits(src.min) == arith.Bits(dst.min) && arith.Bits(src.max) == arith.Bits(dst.max)
}
