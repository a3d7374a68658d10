package claims

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExpiryHorizon is the lookahead window used by ExpiresSoon.
const ExpiryHorizon = time.Minute

// Claims is the decoded payload of a compact three-segment token.
// It is immutable after construction and safe to share across goroutines.
type Claims struct {
	values map[string]any
}

// Decode extracts the claims set from a compact token string of the form
// <header>.<payload>.<signature>. Only the payload segment is inspected; the
// signature is NOT verified. Use Decode for claim extraction from tokens that
// were already authenticated elsewhere, never for authentication itself.
//
// Returns ErrInvalidToken when the string does not have exactly three
// dot-separated segments or the payload is not valid base64url, and
// ErrInvalidPayload when the decoded payload is not a JSON object.
func Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	raw, err := base64URLDecode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	// A payload of JSON null unmarshals into a nil map without error; it is
	// still not an object.
	if values == nil {
		return nil, ErrInvalidPayload
	}

	return &Claims{values: values}, nil
}

// Get returns the raw claim value for key and whether it is present.
func (c *Claims) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Email returns the "sub" claim when it is a string.
func (c *Claims) Email() (string, bool) {
	return c.stringClaim("sub")
}

// UserID returns the "uid" claim when it is a string.
func (c *Claims) UserID() (string, bool) {
	return c.stringClaim("uid")
}

// GivenName returns the "given_name" claim when it is a string.
func (c *Claims) GivenName() (string, bool) {
	return c.stringClaim("given_name")
}

// FamilyName returns the "family_name" claim when it is a string.
func (c *Claims) FamilyName() (string, bool) {
	return c.stringClaim("family_name")
}

// Expiry returns the "exp" claim converted from Unix seconds to a point in
// time. Absent or non-numeric values report false.
func (c *Claims) Expiry() (time.Time, bool) {
	v, ok := c.values["exp"]
	if !ok {
		return time.Time{}, false
	}

	// encoding/json decodes every JSON number into float64.
	exp, ok := v.(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

// IsExpired reports whether the token's expiry has passed. A missing or
// malformed "exp" claim counts as already expired.
func (c *Claims) IsExpired() bool {
	exp, ok := c.Expiry()
	if !ok {
		return true
	}
	return time.Now().After(exp)
}

// ExpiresSoon reports whether the token expires within ExpiryHorizon from
// now. A missing or malformed "exp" claim counts as expiring.
func (c *Claims) ExpiresSoon() bool {
	exp, ok := c.Expiry()
	if !ok {
		return true
	}
	return time.Now().Add(ExpiryHorizon).After(exp)
}

func (c *Claims) stringClaim(key string) (string, bool) {
	v, ok := c.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// base64URLDecode decodes base64url data, restoring padding as needed.
// Compact tokens omit padding per RFC 7515, but Go's decoder requires it.
// A remainder of 1 cannot occur in valid base64 and is rejected outright.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 1:
		return nil, base64.CorruptInputError(len(s))
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	return base64.URLEncoding.DecodeString(s)
}
