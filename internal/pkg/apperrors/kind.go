package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a chain file failure.
type Kind int

const (
	// KindFile means the chain file could not be opened or read.
	KindFile Kind = iota + 1
	// KindDeserialization means the bytes were not a valid chain document.
	KindDeserialization
)

// String returns the human readable description of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return ErrFile.Error()
	case KindDeserialization:
		return ErrDeserialization.Error()
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// sentinel returns the package sentinel that errors.Is matches for k.
func (k Kind) sentinel() error {
	switch k {
	case KindFile:
		return ErrFile
	case KindDeserialization:
		return ErrDeserialization
	default:
		return nil
	}
}

// Error is a chain file failure carrying its kind and the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

// NewFileError wraps an I/O failure.
func NewFileError(err error) *Error {
	return &Error{Kind: KindFile, Err: err}
}

// NewDeserializationError wraps a JSON parse or shape failure.
func NewDeserializationError(err error) *Error {
	return &Error{Kind: KindDeserialization, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrFile) and errors.Is(err, ErrDeserialization) match by kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
