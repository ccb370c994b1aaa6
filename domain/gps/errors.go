package gps

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is matched by every parse failure
	ErrInvalidFormat = errors.New("invalid angle format")
	// ErrFractionalPlacement is returned when more than one sexagesimal part carries a decimal separator
	ErrFractionalPlacement = errors.New("only the rightmost portion of an angle may be fractional")
	ErrInvalidInterval     = errors.New("seconds interval must not be zero")
	ErrInvalidHemisphere   = errors.New("hemisphere must be specified")
)

// FormatError describes a string that could not be turned into an angle
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrInvalidFormat, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidFormat, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func formatError(input string, cause error) error {
	return &FormatError{Input: input, Err: cause}
}
