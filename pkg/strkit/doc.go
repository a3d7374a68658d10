// Package strkit provides small, stateless string transformation helpers:
// capitalization, title casing, fixed-size chunking, PascalCase word
// splitting and blank-string predicates. All helpers are rune-aware and safe
// for multi-byte input.
package strkit
