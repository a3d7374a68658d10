// Package jsonkit provides JSON field types that bridge string and numeric
// representations: IntString and FloatString marshal as quoted strings and
// unmarshal from either form, tolerating APIs that are inconsistent about
// quoting numbers.
package jsonkit
