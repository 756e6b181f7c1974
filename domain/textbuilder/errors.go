package textbuilder

import "errors"

var (
	// ErrInvalidArgument indicates an operand the builder cannot accept.
	ErrInvalidArgument = errors.New("textbuilder: invalid argument")

	// ErrIndexOutOfRange indicates a character index outside the raw text.
	ErrIndexOutOfRange = errors.New("textbuilder: index out of range")
)
