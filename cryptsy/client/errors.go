package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport error")
	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("decode error")
	// ErrInvalidArgument is returned before any I/O when a call's
	// preconditions do not hold.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TransportError is a failed round trip: DNS, connect, TLS, timeout or a
// cancelled context.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError is a response body that is not a JSON object.
type DecodeError struct {
	Method     string
	StatusCode int
	// Body is the start of the offending body, for diagnostics.
	Body string
	Err  error
}

const maxBodyExcerpt = 256

func newDecodeError(method string, status int, body []byte, err error) *DecodeError {
	excerpt := string(body)
	if len(excerpt) > maxBodyExcerpt {
		excerpt = excerpt[:maxBodyExcerpt] + "..."
	}
	return &DecodeError{Method: method, StatusCode: status, Body: excerpt, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response (status %d): %v", e.Method, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

var errNullBody = errors.New("body is JSON null")
