package claims

import "errors"

var (
	ErrInvalidToken   = errors.New("claims: token is not a three-segment compact serialization")
	ErrInvalidPayload = errors.New("claims: payload is not a JSON object")
)
