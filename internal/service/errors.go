package service

import "fmt"

// ErrorKind classifies a failed search or location operation.
type ErrorKind int

const (
	// KindInput: the request cannot be served as given (bad filters, no location).
	KindInput ErrorKind = iota + 1
	// KindResolution: the address could not be turned into coordinates.
	KindResolution
	// KindGateway: the places provider could not be reached or refused us.
	KindGateway
	// KindParse: the places provider answered with something unusable.
	KindParse
	// KindInternal: anything else.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input_error"
	case KindResolution:
		return "resolution_error"
	case KindGateway:
		return "gateway_error"
	case KindParse:
		return "parse_error"
	default:
		return "internal_error"
	}
}

// Error is the typed outcome of a failed pipeline stage. Message is safe to show to clients;
// Err holds the diagnostic cause and is only logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("service: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("service: %s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
