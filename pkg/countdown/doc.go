// Package countdown provides a bounded periodic tick stream: a channel that
// emits a decrementing counter at a fixed interval and closes after the last
// tick or when the supplied context is cancelled.
//
// # Usage
//
//	for remaining := range countdown.Ticks(ctx, time.Second, 10) {
//	    fmt.Println(remaining) // 9, 8, ..., 0
//	}
package countdown
