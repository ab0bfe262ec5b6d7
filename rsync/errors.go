package rsync

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of an Error. The set is intentionally flat
// (no wrapped hierarchy of error types) so that callers can switch on it
// directly.
type Kind uint

const (
	// KindIOError indicates that an underlying file read or write failed.
	KindIOError Kind = iota
	// KindIncompatibleDataSize indicates that an input buffer was shorter
	// than twice the chunk size.
	KindIncompatibleDataSize
	// KindIncompatibleChunkSize indicates that a user-supplied chunk size
	// differs from the one recorded in a signature.
	KindIncompatibleChunkSize
	// KindSerializeError indicates that encoding or decoding a Signature or
	// Delta failed.
	KindSerializeError
	// KindIndexCorrupted indicates that the Matcher's bucket filter produced
	// more than one survivor for a weak-hit window.
	KindIndexCorrupted
	// KindTryFromSliceError indicates that a strong hash had an unexpected
	// length. This should never occur in practice.
	KindTryFromSliceError
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindIOError:
		return "IOError"
	case KindIncompatibleDataSize:
		return "IncompatibleDataSize"
	case KindIncompatibleChunkSize:
		return "IncompatibleChunkSize"
	case KindSerializeError:
		return "SerializeError"
	case KindIndexCorrupted:
		return "IndexCorrupted"
	case KindTryFromSliceError:
		return "TryFromSliceError"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every stage of the engine. It carries
// a flat Kind plus whatever caused it, wrapped with github.com/pkg/errors so
// that the original call stack remains available.
type Error struct {
	// Kind categorizes the failure.
	Kind Kind
	// cause is the underlying error, if any.
	cause error
}

// newError constructs an Error of the given kind, wrapping cause (which may
// be nil) with the supplied message.
func newError(kind Kind, cause error, message string) *Error {
	if cause != nil {
		cause = errors.Wrap(cause, message)
	} else {
		cause = errors.New(message)
	}
	return &Error{Kind: kind, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// NewSerializeError wraps cause as a KindSerializeError. It's exported for
// use by collaborators outside this package (such as pkg/codec) that
// implement encoding and decoding of Signature and Delta values.
func NewSerializeError(cause error, message string) *Error {
	return newError(KindSerializeError, cause, message)
}

// NewIOError wraps cause as a KindIOError. It's exported for use by the CLI,
// which owns file I/O.
func NewIOError(cause error, message string) *Error {
	return newError(KindIOError, cause, message)
}
