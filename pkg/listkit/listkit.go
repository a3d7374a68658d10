package listkit

import "slices"

// Equal reports whether a and b contain the same elements in the same order.
// Nil and empty slices are considered equal.
func Equal[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b []T, eq func(a, b T) bool) bool {
	return slices.EqualFunc(a, b, eq)
}

// Dedup removes duplicate elements, keeping the first occurrence and
// preserving the original order.
func Dedup[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// DedupFunc removes elements whose key collides with an earlier element's
// key, keeping the first occurrence and preserving order.
func DedupFunc[T any, K comparable](s []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(s))
	result := make([]T, 0, len(s))

	for _, item := range s {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}

	return result
}
