// Package claims extracts the payload of a compact three-segment signed
// token (base64url header, base64url JSON payload, base64url signature) and
// exposes typed accessors over the standard claim names.
//
// The package is a payload reader, not a verifier: the signature segment is
// never checked. Callers must authenticate tokens elsewhere and use this
// package only to read claims out of tokens they already trust.
//
// # Usage
//
//	c, err := claims.Decode(token)
//	if err != nil {
//	    // malformed token or payload
//	}
//
//	if email, ok := c.Email(); ok {
//	    // "sub" claim present as a string
//	}
//	if c.ExpiresSoon() {
//	    // refresh the token
//	}
//
// # Error Handling
//
// The structural decode fails loudly: Decode returns ErrInvalidToken for a
// string without exactly three dot-separated segments or with undecodable
// base64url, and ErrInvalidPayload when the payload is not a JSON object.
// Both are sentinel values usable with errors.Is.
//
// The per-claim accessors never fail loudly. Payload contents are untrusted,
// so a missing or wrongly-typed claim degrades to the two-value "not
// present" form, and the expiry predicates treat a missing "exp" claim
// conservatively as already expired.
package claims
