package rangecast

// Convert clamps v to the src domain and linearly rescales it into the dst
// domain, returning the result in the destination value type.
//
// The algorithm is: clamp, normalize against the source minimum, scale by the
// destination extent, divide by the source extent, offset by the destination
// minimum, narrow. Out-of-range inputs saturate silently. Integer-only
// conversions truncate toward zero; conversions involving a floating-point
// side run in float64 and follow IEEE rounding, so converting 0.0 from
// [-1, 1] to [0, 255] yields 127, the truncation of 127.5.
//
// Convert never fails. The two caller preconditions, documented rather than
// checked, are that a degenerate source domain (min == max) maps everything
// to dst.Min(), and that integer conversions are exact only while
// (value - src.Min()) * dst-extent fits in 64 bits.
//
// For converting many values between the same two domains, build a
// Converter once instead.
func Convert[T, U Number](v T, src Interval[T], dst Interval[U]) U {
	return NewConverter(src, dst).Convert(v)
}
