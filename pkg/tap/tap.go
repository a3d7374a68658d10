// Package tap provides identity helpers with side effects, for observing a
// value in the middle of an expression without restructuring it: Tap invokes
// an arbitrary callback, Log emits the value through slog. Both return their
// input unchanged.
package tap

import "log/slog"

// Tap invokes fn with v and returns v unchanged. Useful for peeking at
// intermediate values in call chains.
func Tap[T any](v T, fn func(T)) T {
	if fn != nil {
		fn(v)
	}
	return v
}

// Log records v at debug level on logger and returns v unchanged. A nil
// logger falls back to slog.Default().
func Log[T any](logger *slog.Logger, msg string, v T) T {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug(msg, slog.Any("value", v))
	return v
}
