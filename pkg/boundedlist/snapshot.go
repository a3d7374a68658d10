package boundedlist

// Snapshot is a read-only view of a List's contents at a single instant.
// It never observes later mutations of the source list, and it cannot be
// mutated itself: Set always fails with ErrReadOnlySnapshot.
type Snapshot[T any] struct {
	items []T
}

// Len returns the number of elements captured.
func (s Snapshot[T]) Len() int {
	return len(s.items)
}

// Get returns the element at index i, oldest first.
func (s Snapshot[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return s.items[i], nil
}

// Set always fails: snapshots are immutable. The method exists so that
// attempted mutation fails distinctly instead of silently succeeding on a
// detached copy.
func (s Snapshot[T]) Set(i int, v T) error {
	return ErrReadOnlySnapshot
}

// Values returns a fresh copy of the captured elements. Mutating the
// returned slice does not affect the snapshot.
func (s Snapshot[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every captured element in order until fn returns false.
func (s Snapshot[T]) Each(fn func(i int, v T) bool) {
	for i, v := range s.items {
		if !fn(i, v) {
			return
		}
	}
}
