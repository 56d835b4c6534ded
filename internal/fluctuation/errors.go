package fluctuation

import "fmt"

// InvalidPriceError reports a reference price rejected by validation:
// non-numeric input, out-of-range value, or a tick-size violation.
// The Reason names the specific rule that failed.
type InvalidPriceError struct {
	Input  string
	Reason string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %s: %s", e.Input, e.Reason)
}
