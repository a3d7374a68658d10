// Package boundedlist provides a generic ordered container with a fixed
// maximum element count and oldest-first eviction on overflow.
//
// A List behaves like an ordinary growable slice wrapper (indexed access,
// insertion, search, sort, slicing) except that every length-increasing
// operation re-checks the capacity invariant and evicts from the head until
// the retained element count fits the capacity again. In-place replacement
// does not evict since length is unchanged.
//
// Eviction is strictly FIFO. Even an insert at the tail can evict an
// unrelated element appended long ago, because the head is always the
// eviction point.
//
// # Usage
//
//	recent, _ := boundedlist.New[string](2)
//	recent.Append("first")
//	recent.Append("second")
//	recent.Append("third")
//	recent.Values() // ["second", "third"]
//
// A capacity of zero is legal and produces a list that stays empty no matter
// what is appended. Seeding a list with more elements than its capacity is a
// construction error, not a silent truncation:
//
//	_, err := boundedlist.NewFrom(1, []int{1, 2}) // ErrInvalidCapacity
//
// # Snapshots
//
// Snapshot returns a detached, read-only copy of the current contents.
// Mutating the source list never changes an existing snapshot, and calling
// Set on a snapshot fails with ErrReadOnlySnapshot.
//
// # Concurrency
//
// List is a plain mutable value with no internal locking, exactly like a
// slice. Callers sharing a List across goroutines must synchronize access
// themselves.
package boundedlist
