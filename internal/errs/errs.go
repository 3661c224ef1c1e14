// Package errs defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages, so commands can map every failure mode to
// one targeted message and a single exit code.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures
// appropriately.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// MissingArgument indicates a required companion flag or value was absent.
	MissingArgument Kind = "missing_argument"
	// MalformedParameter indicates a params string or document was unusable.
	MalformedParameter Kind = "malformed_parameter"
	// ProtocolFailure indicates a non-success response status from the server.
	ProtocolFailure Kind = "protocol_failure"
	// EmptyModel indicates a success status that carried no usable payload.
	EmptyModel Kind = "empty_model"
	// TransportError indicates a connectivity failure before any response.
	TransportError Kind = "transport_error"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
