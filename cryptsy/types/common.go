package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a decoded JSON object as returned by the exchange, untouched.
type Value map[string]any

// Flag is the exchange's success indicator. The API is not consistent about
// its encoding and sends 0/1, "0"/"1" or true/false depending on the method.
type Flag bool

// UnmarshalJSON accepts numbers, numeric strings and booleans.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		data = []byte(s)
	}
	switch string(data) {
	case "1", "true":
		*f = true
	case "0", "false", "":
		*f = false
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid success flag %q", data)
		}
		*f = n != 0
	}
	return nil
}

// Int returns the flag as 0 or 1, the way the exchange reports it.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}

// Result is the envelope every private method answers with:
// {"success": 0|1, "return": ..., "error": "..."}. A few methods put their
// payload next to success instead of under return (createorder answers with
// orderid and moreinfo).
type Result struct {
	Success  Flag            `json:"success"`
	Return   json.RawMessage `json:"return,omitempty"`
	Error    string          `json:"error,omitempty"`
	OrderID  string          `json:"orderid,omitempty"`
	MoreInfo string          `json:"moreinfo,omitempty"`

	// Raw is the full decoded body.
	Raw Value `json:"-"`
}

// ParseResult decodes a response body into a Result, keeping the raw object.
func ParseResult(body []byte) (*Result, error) {
	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &res.Raw); err != nil {
		return nil, err
	}
	return &res, nil
}

// HasReturn reports whether the response carried a non-null return member.
func (r *Result) HasReturn() bool {
	if r == nil {
		return false
	}
	trimmed := bytes.TrimSpace(r.Return)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Err returns the exchange-reported failure as an *APIError, or nil when
// the call succeeded.
func (r *Result) Err() error {
	if r == nil || bool(r.Success) {
		return nil
	}
	return &APIError{Message: r.Error}
}

// Decode unmarshals the return member into v. It fails with the exchange
// error when success is 0 and with ErrNoReturn when the member is absent.
func (r *Result) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if !r.HasReturn() {
		return ErrNoReturn
	}
	return json.Unmarshal(r.Return, v)
}
