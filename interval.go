package rangecast

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/rangecast/internal/arith"
	"github.com/hupe1980/rangecast/internal/limits"
)

// Number is the set of value types a domain can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Interval is an inclusive numeric domain [min, max] with invariant
// min <= max, enforced at construction. It is an immutable, comparable value
// type: copies share nothing, and changing a domain means constructing a new
// one. The zero value is the degenerate domain [0, 0].
type Interval[V Number] struct {
	min, max V
}

// NewInterval returns the domain [min, max]. It rejects min > max and NaN
// bounds with *ErrInvalidInterval. min == max is legal but degenerate: every
// value converted out of such a domain maps to the destination minimum.
func NewInterval[V Number](min, max V) (Interval[V], error) {
	if min != min || max != max {
		return Interval[V]{}, &ErrInvalidInterval{Min: min, Max: max, Reason: "bound is NaN"}
	}
	if min > max {
		return Interval[V]{}, &ErrInvalidInterval{Min: min, Max: max, Reason: "min exceeds max"}
	}
	return Interval[V]{min: min, max: max}, nil
}

// MustInterval is like NewInterval but panics on invalid bounds. Use it for
// package-level domain declarations.
func MustInterval[V Number](min, max V) Interval[V] {
	i, err := NewInterval(min, max)
	if err != nil {
		panic(fmt.Sprintf("rangecast: %v", err))
	}
	return i
}

// Full returns the domain covering the entire representable range of V.
// For floating-point types the bounds are the negated and positive largest
// finite values.
func Full[V Number]() Interval[V] {
	return Interval[V]{min: limits.MinOf[V](), max: limits.MaxOf[V]()}
}

// UnsignedBits returns the domain [0, 2^bits-1] of an unsigned integer with
// the given number of significant bits, e.g. UnsignedBits[uint16](12) for a
// 12-bit ADC reading carried in a uint16. It panics if bits does not fit V.
func UnsignedBits[V constraints.Unsigned](bits int) Interval[V] {
	if bits < 1 || bits > int(limits.Width[V]()) {
		panic(fmt.Sprintf("rangecast: %d-bit range does not fit %d-bit value type", bits, limits.Width[V]()))
	}
	return Interval[V]{min: 0, max: V(limits.UnsignedMax(bits))}
}

// SignedBits returns the symmetric domain [-(2^(bits-1)-1), 2^(bits-1)-1] of
// a signed integer with the given number of bits. The most negative
// two's-complement value is deliberately excluded so that the bounds are
// symmetric around zero and full-scale conversions are sign-symmetric. It
// panics if bits does not fit V.
func SignedBits[V constraints.Signed](bits int) Interval[V] {
	if bits < 1 || bits > int(limits.Width[V]()) {
		panic(fmt.Sprintf("rangecast: %d-bit range does not fit %d-bit value type", bits, limits.Width[V]()))
	}
	max := limits.SignedMax(bits)
	return Interval[V]{min: V(-max), max: V(max)}
}

// Rational returns the domain [min*num/den, max*num/den] evaluated in V,
// multiplication first, matching constant-folded fixed-point bound
// definitions such as "integer bounds [0, 1] scaled by 1/2". For integral V
// the divisions truncate. It panics on a zero denominator, on any negative
// operand when V is unsigned (the conversion to V would wrap, not invert),
// or if the scaled bounds come out inverted (possible with negative ratios
// on signed types).
func Rational[V Number](min, max, num, den int64) Interval[V] {
	if den == 0 {
		panic("rangecast: zero ratio denominator")
	}
	if !limits.IsSigned[V]() && (min < 0 || max < 0 || num < 0 || den < 0) {
		panic(fmt.Sprintf("rangecast: negative operand in ratio %d/%d over [%d, %d] with unsigned value type", num, den, min, max))
	}
	lo := V(num) * V(min) / V(den)
	hi := V(num) * V(max) / V(den)
	if lo > hi {
		panic(fmt.Sprintf("rangecast: ratio %d/%d inverts bounds [%d, %d]", num, den, min, max))
	}
	return Interval[V]{min: lo, max: hi}
}

// Predeclared float domains.
var (
	// Float01 is the normalized float32 domain [0, 1].
	Float01 = MustInterval[float32](0, 1)
	// Float11 is the normalized float32 domain [-1, 1].
	Float11 = MustInterval[float32](-1, 1)
	// FloatHalf is the float32 domain [0, 0.5], the integer bounds [0, 1]
	// scaled by 1/2.
	FloatHalf = Rational[float32](0, 1, 1, 2)
)

// Full-range domains of the native fixed-width types.
var (
	Uint8Full   = Full[uint8]()
	Int8Full    = Full[int8]()
	Uint16Full  = Full[uint16]()
	Int16Full   = Full[int16]()
	Uint32Full  = Full[uint32]()
	Int32Full   = Full[int32]()
	Uint64Full  = Full[uint64]()
	Int64Full   = Full[int64]()
	Float32Full = Full[float32]()
	Float64Full = Full[float64]()
)

// Min returns the inclusive lower bound.
func (i Interval[V]) Min() V { return i.min }

// Max returns the inclusive upper bound.
func (i Interval[V]) Max() V { return i.max }

// Extent returns max - min reported as a float64. The conversion kernel uses
// exact wide arithmetic internally; this accessor is for inspection and may
// round for ranges wider than 2^53.
func (i Interval[V]) Extent() float64 {
	if limits.IsFloat[V]() {
		return float64(i.max) - float64(i.min)
	}
	return float64(arith.Delta(i.max, i.min))
}

// Contains reports whether v lies within the domain, bounds included.
func (i Interval[V]) Contains(v V) bool {
	return i.min <= v && v <= i.max
}

// Clamp saturates v to the nearest bound of the domain.
func (i Interval[V]) Clamp(v V) V {
	return arith.Clamp(v, i.min, i.max)
}

// String returns a debug representation of the domain.
func (i Interval[V]) String() string {
	return fmt.Sprintf("[%v, %v]", i.min, i.max)
}
