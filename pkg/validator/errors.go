package validator

import "errors"

// ErrValidationFailed is the message of an empty ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
