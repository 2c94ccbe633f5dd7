package exact

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("exact")

// FormatError is returned when text is not a decimal number.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid decimal: %q", e.Input)
}
