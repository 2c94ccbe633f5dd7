package control

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when the current block type does not
// support the requested operation.
var ErrInvalidOperation = Error.New("invalid operation")
