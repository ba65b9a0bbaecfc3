// Package rangecast converts values between bounded numeric domains with
// deterministic clamping and linear rescaling. It removes the ad-hoc
// bounds-checking code that otherwise accumulates around ADC readings,
// normalized floats and fixed-bit-width integers.
//
// # Domains
//
// A domain is an Interval: a value type plus inclusive [min, max] bounds.
// Common domains are predeclared (Float01, Float11, Uint8Full, ...), derived
// (UnsignedBits, SignedBits, Rational, Full) or constructed at runtime from
// calibrated limits:
//
//	adc := rangecast.UnsignedBits[uint16](12)        // [0, 4095]
//	volts, err := rangecast.NewInterval(0.0, 3.3)    // calibrated at runtime
//
// Predeclared and runtime-constructed domains are the same type and behave
// identically; equality of bounds is all that matters.
//
// # Converting
//
//	v := rangecast.Convert(reading, adc, volts)      // uint16 -> float64
//	b := rangecast.Convert(sample, rangecast.Float11, rangecast.Uint8Full)
//
// Inputs outside the source domain saturate to the nearest bound before
// rescaling; conversion itself never fails. Results always lie within the
// destination bounds, and the mapping is monotonic. When source and
// destination are the same domain the value passes through bit-for-bit with
// no rounding drift.
//
// For hot loops, resolve once and convert many:
//
//	c := rangecast.NewConverter(adc, volts)
//	for _, r := range readings {
//		out = append(out, c.Convert(r))
//	}
//
// or use ConvertSlice for whole buffers.
//
// # Numeric semantics
//
// Integer-only conversions run in exact 64-bit arithmetic and truncate toward
// zero; conversions with a floating-point side run in float64 under IEEE
// rounding. There is no round-to-nearest step: converting 0.0 from [-1, 1]
// to [0, 255] yields 127. Two caller preconditions are documented rather than
// checked: a degenerate source domain (min == max) maps every input to the
// destination minimum, and integer conversions lose exactness once
// delta * destination-extent exceeds 64 bits.
package rangecast
