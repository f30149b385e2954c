package jsonsniff

import (
	"errors"
	"fmt"
)

// Kind classifies why a string could not be decoded.
type Kind int

const (
	Unknown Kind = iota
	GuardFailed
	DepthExceeded
	StateMismatch
	ControlCharacter
	SyntaxError
	InvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case GuardFailed:
		return "GuardFailed"
	case DepthExceeded:
		return "DepthExceeded"
	case StateMismatch:
		return "StateMismatch"
	case ControlCharacter:
		return "ControlCharacter"
	case SyntaxError:
		return "SyntaxError"
	case InvalidEncoding:
		return "InvalidEncoding"
	default:
		return "Unknown"
	}
}

var (
	ErrGuardFailed      = errors.New("jsonsniff: string does not start with { or end with }")
	ErrDepthExceeded    = errors.New("jsonsniff: maximum nesting depth exceeded")
	ErrStateMismatch    = errors.New("jsonsniff: bracket underflow or mismatch")
	ErrControlCharacter = errors.New("jsonsniff: unexpected control character in string")
	ErrSyntax           = errors.New("jsonsniff: malformed json")
	ErrInvalidEncoding  = errors.New("jsonsniff: malformed utf-8")
	ErrUnknown          = errors.New("jsonsniff: unknown error")
)

// sentinel returns the package error matching k.
func (k Kind) sentinel() error {
	switch k {
	case GuardFailed:
		return ErrGuardFailed
	case DepthExceeded:
		return ErrDepthExceeded
	case StateMismatch:
		return ErrStateMismatch
	case ControlCharacter:
		return ErrControlCharacter
	case SyntaxError:
		return ErrSyntax
	case InvalidEncoding:
		return ErrInvalidEncoding
	default:
		return ErrUnknown
	}
}

// Error is returned for every failed sniff. It matches both the sentinel for
// its Kind and the underlying decoder error with errors.Is and errors.As.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// KindOf returns the Kind carried by err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
