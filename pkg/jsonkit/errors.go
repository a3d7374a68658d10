package jsonkit

import "errors"

var ErrNotNumeric = errors.New("jsonkit: value is not numeric")
