package rangecast

import "fmt"

// ErrInvalidInterval indicates bounds that cannot describe a domain, either
// because min exceeds max or because a bound is NaN.
type ErrInvalidInterval struct {
	Min    any
	Max    any
	Reason string
}

func (e *ErrInvalidInterval) Error() string {
	return fmt.Sprintf("invalid interval [%v, %v]: %s", e.Min, e.Max, e.Reason)
}
