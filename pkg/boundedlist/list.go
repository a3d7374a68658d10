package boundedlist

import "slices"

// List is an ordered container that retains at most a fixed number of
// elements. Appending beyond capacity evicts the oldest element(s) from the
// head until the size invariant holds again. Eviction is strictly FIFO:
// the oldest-inserted element goes first, regardless of where the
// overflow-causing insert occurred.
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type List[T any] struct {
	capacity int
	items    []T
}

// New creates an empty list with the given capacity.
// A capacity of zero is legal and yields a list that discards every
// appended element immediately. Negative capacity returns ErrInvalidCapacity.
func New[T any](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &List[T]{
		capacity: capacity,
		items:    make([]T, 0, capacity),
	}, nil
}

// NewFrom creates a list pre-filled with seed. The seed is copied.
// A seed longer than capacity is a construction-time contract violation
// and returns ErrInvalidCapacity rather than truncating silently.
func NewFrom[T any](capacity int, seed []T) (*List[T], error) {
	if capacity < 0 || len(seed) > capacity {
		return nil, ErrInvalidCapacity
	}
	l := &List[T]{
		capacity: capacity,
		items:    make([]T, len(seed), capacity),
	}
	copy(l.items, seed)
	return l, nil
}

// Append adds v as the newest (tail) element, evicting the head if the
// list is already full. At most one element is evicted per call.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
	l.evict()
}

// AppendAll adds all vs in order, then evicts from the head until the
// size invariant holds.
func (l *List[T]) AppendAll(vs ...T) {
	l.items = append(l.items, vs...)
	l.evict()
}

// InsertAt splices vs into the list at index i, which may equal Len()
// to insert at the tail. Overflow still evicts from the head, even when
// the insert happened at the tail.
func (l *List[T]) InsertAt(i int, vs ...T) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = slices.Insert(l.items, i, vs...)
	l.evict()
	return nil
}

// Get returns the element at index i, oldest first.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.items[i], nil
}

// Set replaces the element at index i in place. Length is unchanged, so
// no eviction occurs.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i] = v
	return nil
}

// RemoveAt deletes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return v, nil
}

// Slice returns a copy of the half-open range [from, to).
func (l *List[T]) Slice(from, to int) ([]T, error) {
	if from < 0 || to > len(l.items) || from > to {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, to-from)
	copy(out, l.items[from:to])
	return out, nil
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(l.items, f)
}

// ContainsFunc reports whether any element satisfies f.
func (l *List[T]) ContainsFunc(f func(T) bool) bool {
	return slices.ContainsFunc(l.items, f)
}

// SortFunc sorts the list in place using cmp. Length is unchanged, so no
// eviction occurs; note that sorting reorders which element counts as
// "oldest" for future evictions.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(l.items, cmp)
}

// Resize sets the length explicitly, bounds-checked against capacity.
// Growing fills the tail with zero values; shrinking drops the tail.
func (l *List[T]) Resize(n int) error {
	if n < 0 || n > l.capacity {
		return ErrIndexOutOfRange
	}
	for len(l.items) < n {
		var zero T
		l.items = append(l.items, zero)
	}
	l.items = l.items[:n]
	return nil
}

// Clear removes all elements. Capacity is unchanged.
func (l *List[T]) Clear() {
	l.items = l.items[:0]
}

// Len returns the current number of retained elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the immutable capacity set at construction.
func (l *List[T]) Cap() int {
	return l.capacity
}

// Values returns a copy of the retained elements, oldest to newest.
// Mutating the returned slice does not affect the list.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Each calls fn for every element in order until fn returns false.
func (l *List[T]) Each(fn func(i int, v T) bool) {
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}

// Snapshot returns an immutable point-in-time copy of the list. Later
// mutation of the list never affects the snapshot, and vice versa.
func (l *List[T]) Snapshot() Snapshot[T] {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{items: items}
}

// Must be called after every length-increasing operation.
func (l *List[T]) evict() {
	for len(l.items) > l.capacity {
		l.items = slices.Delete(l.items, 0, 1)
	}
}
