package rangecast

// ConvertSlice converts each element of vs from the src domain into the dst
// domain, appending the results to out. Pass nil to allocate a fresh result
// slice sized to len(vs); pass a slice with spare capacity to reuse a buffer
// across calls.
func ConvertSlice[T, U Number](out []U, vs []T, src Interval[T], dst Interval[U]) []U {
	c := NewConverter(src, dst)
	if out == nil {
		out = make([]U, 0, len(vs))
	}
	for _, v := range vs {
		out = append(out, c.Convert(v))
	}
	return out
}
