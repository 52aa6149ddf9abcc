package macaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by parse errors of kind Malformed.
	ErrMalformed = errors.New("macaddr: malformed address")
	// ErrOutOfRange is matched by parse errors of kind OutOfRange.
	ErrOutOfRange = errors.New("macaddr: octet out of range")
	// ErrInvalidLength is returned when a byte slice is not 6 bytes long.
	ErrInvalidLength = errors.New("macaddr: invalid length")
)

// ParseErrorKind tells why an input was rejected.
type ParseErrorKind int

const (
	// Malformed means no accepted notation yielded six fields.
	Malformed ParseErrorKind = iota + 1
	// OutOfRange means six fields were read but one is outside 0..255.
	OutOfRange
)

func (k ParseErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parse. It carries the rejected input.
type ParseError struct {
	Input string
	Kind  ParseErrorKind
}

func (e *ParseError) Error() string {
	if e.Kind == OutOfRange {
		return fmt.Sprintf("macaddr: illegal address %q", e.Input)
	}
	return fmt.Sprintf("macaddr: error in parsing %q", e.Input)
}

// Unwrap returns ErrMalformed or ErrOutOfRange so that errors.Is works.
func (e *ParseError) Unwrap() error {
	if e.Kind == OutOfRange {
		return ErrOutOfRange
	}
	return ErrMalformed
}
