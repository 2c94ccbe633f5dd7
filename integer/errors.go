package integer

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")
