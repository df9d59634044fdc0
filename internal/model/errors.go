package model

import (
	"errors"
	"fmt"
)

// TransportError wraps any network failure, non-success HTTP status or
// malformed response body from the repository API. It is never retried:
// a single failed call aborts the enclosing operation.
type TransportError struct {
	Endpoint string
	Err      error
}

// NewTransportError wraps err as a TransportError for the given endpoint.
func NewTransportError(endpoint string, err error) error {
	return &TransportError{Endpoint: endpoint, Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether any error in the chain is a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
