package timespan

import "errors"

// Error kinds. Returned errors wrap one of these; match with errors.Is.
var (
	// ErrOverflow indicates a value outside the representable tick range.
	ErrOverflow = errors.New("timespan: overflow")

	// ErrInvalidArgument indicates an unusable operand such as NaN.
	ErrInvalidArgument = errors.New("timespan: invalid argument")

	// ErrDivideByZero indicates division by a zero scalar.
	ErrDivideByZero = errors.New("timespan: divide by zero")

	// ErrFormat indicates text that does not match the timespan grammar.
	ErrFormat = errors.New("timespan: bad format")
)
