package rpegio

import "fmt"

// ErrorKind classifies decoding errors.
type ErrorKind int

const (
	ErrUnexpectedByte ErrorKind = iota + 1
	ErrTruncatedInput
	ErrMalformedNewline
	ErrExpectedNumber
	ErrIntegerOverflow
	ErrMisalignedPayload
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedByte:
		return "unexpected byte"
	case ErrTruncatedInput:
		return "truncated input"
	case ErrMalformedNewline:
		return "malformed newline"
	case ErrExpectedNumber:
		return "expected number"
	case ErrIntegerOverflow:
		return "integer overflow"
	case ErrMisalignedPayload:
		return "misaligned payload"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error carries offset and classification for better diagnostics.
// I/O failures are never wrapped in Error; they propagate verbatim
// from the underlying reader or writer.
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
		return fmt.Sprintf("rpeg: %v at %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("rpeg: %v: %s", e.Kind, e.Detail)
}
