package jsonkit

import (
	"bytes"
	"fmt"
	"strconv"
)

var nullLiteral = []byte("null")

// IntString is an int64 that marshals to a JSON string and unmarshals from
// either a JSON string or a JSON number. Useful for APIs that transport
// identifiers as quoted numerics to avoid precision loss in JavaScript
// clients.
type IntString int64

// MarshalJSON renders the value as a quoted decimal string.
func (v IntString) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatInt(int64(v), 10)), nil
}

// UnmarshalJSON accepts both "123" and 123. JSON null leaves the value
// unchanged, per encoding/json convention. Anything else fails with
// ErrNotNumeric wrapping the offending literal.
func (v *IntString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		return nil
	}
	s := unquote(data)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotNumeric, data)
	}
	*v = IntString(n)
	return nil
}

// FloatString is a float64 counterpart of IntString.
type FloatString float64

// MarshalJSON renders the value as a quoted decimal string with the shortest
// representation that round-trips.
func (v FloatString) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatFloat(float64(v), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts both "1.5" and 1.5. JSON null leaves the value
// unchanged, per encoding/json convention. Anything else fails with
// ErrNotNumeric wrapping the offending literal.
func (v *FloatString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		return nil
	}
	s := unquote(data)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotNumeric, data)
	}
	*v = FloatString(f)
	return nil
}

// unquote strips surrounding double quotes when present, leaving bare JSON
// numbers untouched.
func unquote(data []byte) string {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = bytes.TrimSpace(data[1 : len(data)-1])
	}
	return string(data)
}
