// Package listkit provides generic slice helpers for equality checks and
// order-preserving deduplication.
package listkit
