package mimeversion

import (
	"errors"
	"fmt"

	"github.com/zostay/go-mimeversion/header"
)

// Causes of a malformed MIME-Version field. Every one of these is also
// header.ErrMalformed when checked with errors.Is.
var (
	// ErrNoValue means the header holds no MIME-Version field.
	ErrNoValue = malformed("no value present")

	// ErrManyValues means the header holds more than one MIME-Version field.
	ErrManyValues = malformed("more than one value present")

	// ErrNotUTF8 means the value is not valid UTF-8 text.
	ErrNotUTF8 = malformed("value is not valid UTF-8")

	// ErrNoSeparator means the value has no "." between major and minor.
	ErrNoSeparator = malformed("missing \".\" separator")

	// ErrBadNumber means the major or minor part is not a decimal number
	// from 0 to 255.
	ErrBadNumber = malformed("version part is not a number from 0 to 255")

	// ErrTrailingText means strict parsing found more than two parts.
	ErrTrailingText = malformed("unexpected text after minor version")
)

// malformedError is a cause that reports itself as header.ErrMalformed.
type malformedError struct {
	msg string
}

func malformed(msg string) error {
	return &malformedError{msg}
}

// Error returns the error message.
func (e *malformedError) Error() string {
	return e.msg
}

// Is makes every cause match header.ErrMalformed.
func (e *malformedError) Is(target error) bool {
	return target == header.ErrMalformed
}

// ParseError is returned whenever a MIME-Version value cannot be parsed. Err is
// one of the cause errors above and Value holds the offending text, if there
// was exactly one value to look at.
type ParseError struct {
	Value string
	Err   error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("malformed %s header: %v", HeaderName, e.Err)
	}
	return fmt.Sprintf("malformed %s header %q: %v", HeaderName, e.Value, e.Err)
}

// Unwrap returns the cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMalformed is shorthand for errors.Is(err, header.ErrMalformed).
func IsMalformed(err error) bool {
	return errors.Is(err, header.ErrMalformed)
}
