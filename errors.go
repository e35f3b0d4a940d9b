package stlconv

import "fmt"

// ErrorKind classifies codec errors.
type ErrorKind int

const (
	ErrMalformedInput ErrorKind = iota + 1
	ErrHeaderTooLong
	ErrUnsupportedEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedInput:
		return "malformed input"
	case ErrHeaderTooLong:
		return "header too long"
	case ErrUnsupportedEncoding:
		return "unsupported encoding"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Error carries offset and classification for better diagnostics.
type Error struct {
	Offset int64
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("stlconv: %v at %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("stlconv: %v: %s", e.Kind, e.Detail)
}
