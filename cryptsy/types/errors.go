package types

import (
	"errors"
	"fmt"
)

// ErrNoReturn is returned by Result.Decode when the response has no return
// member to decode.
var ErrNoReturn = errors.New("response has no return member")

// APIError is a failure reported by the exchange inside a well formed
// response (success == 0). It is data, not a transport failure.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "exchange reported failure"
	}
	return fmt.Sprintf("exchange reported failure: %s", e.Message)
}
