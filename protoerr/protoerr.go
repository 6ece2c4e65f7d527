// Package protoerr defines the error taxonomy shared by the client,
// server and transport packages.
package protoerr

import "fmt"

// Kind classifies a channel failure.
type Kind uint8

const (
	// Disconnected means the transport is not connected, or an operation
	// was attempted on a torn-down channel.
	Disconnected Kind = iota
	// EncoderMismatch means the peer's encoder id differed at connect.
	EncoderMismatch
	// Abandoned means a mutex acquire timed out at connect, indicating
	// the prior channel occupant died without releasing it.
	Abandoned
	// Timeout means a response wait exceeded the command's deadline.
	Timeout
	// UnexpectedResponse means the peeked tag did not match the tag
	// expected for the command just sent.
	UnexpectedResponse
	// DecodeError means a payload was truncated or malformed for the
	// variant it was decoded as.
	DecodeError
	// Unsupported means the server reported Unsupported status.
	Unsupported
	// RemoteFailure means the server reported Failed status, with a
	// diagnostic string.
	RemoteFailure
	// InvalidArgument means the client rejected the call locally, before
	// any round-trip (e.g. an empty address vector, an unknown master
	// block index).
	InvalidArgument
)

var kindName = map[Kind]string{
	Disconnected:        "disconnected",
	EncoderMismatch:     "encoder mismatch",
	Abandoned:           "abandoned",
	Timeout:             "timeout",
	UnexpectedResponse:  "unexpected response",
	DecodeError:         "decode error",
	Unsupported:         "unsupported",
	RemoteFailure:       "remote failure",
	InvalidArgument:     "invalid argument",
}

func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return "unknown"
}

// Error is the concrete error type returned by client, server and
// transport operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error of the given kind with a formatted message.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, so callers can
// write `protoerr.Is(err, protoerr.Timeout)` instead of a type assertion.
func Is(err error, k Kind) bool {
	pe, ok := err.(*Error)
	return ok && pe.Kind == k
}

// KindOf extracts the Kind from err, if err is a *Error.
func KindOf(err error) (Kind, bool) {
	pe, ok := err.(*Error)
	if !ok {
		return 0, false
	}
	return pe.Kind, true
}
