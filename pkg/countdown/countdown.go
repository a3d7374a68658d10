package countdown

import (
	"context"
	"time"
)

// Ticks emits a countdown over a channel: n-1, n-2, ..., 0, one value per
// interval, then closes the channel. The first value arrives after one full
// interval. Cancelling ctx stops the stream early and closes the channel.
//
// A non-positive interval or count yields an already-closed channel. The
// backing goroutine never outlives the stream.
func Ticks(ctx context.Context, interval time.Duration, n int) <-chan int {
	out := make(chan int)

	if interval <= 0 || n <= 0 {
		close(out)
		return out
	}

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for remaining := n - 1; remaining >= 0; remaining-- {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}

			select {
			case out <- remaining:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a countdown stream into a slice, blocking until the stream
// closes. Mostly a convenience for short streams and tests.
func Collect(ch <-chan int) []int {
	var out []int
	for v := range ch {
		out = append(out, v)
	}
	return out
}
