package service

import "errors"

// ErrValidation indicates the caller supplied invalid input.
var ErrValidation = errors.New("validation failed")
