package service

import "errors"

// ErrValidation is returned for malformed or out-of-range input. It is always
// raised before any storage access, so a validation failure leaves the
// repository untouched.
var ErrValidation = errors.New("validation failed")
