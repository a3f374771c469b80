package ident

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("invalid identifier")

	// ErrInvalidRange is matched by every *InvalidRangeError.
	ErrInvalidRange = errors.New("invalid range")

	errNotNumber  = errors.New("not an unsigned number")
	errNotDrawing = errors.New("expected letters followed by digits")
)

// ParseError indicates that a token, or one fragment of a range token, is not
// a valid identifier.
type ParseError struct {
	Token string // the raw token
	Text  string // the offending text within Token
	Err   error  // underlying cause
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Text == "" || e.Text == e.Token {
		return fmt.Sprintf("invalid identifier %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid identifier %q: %q: %v", e.Token, e.Text, e.Err)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap allows error unwrapping
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidRangeError indicates that a range resolved to an end below its start.
type InvalidRangeError struct {
	Token string
	Start uint64
	End   uint64
}

// Error implements the error interface
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %q: end %d is before start %d", e.Token, e.End, e.Start)
}

// Is reports whether target is ErrInvalidRange.
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
