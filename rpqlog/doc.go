// Package rpqlog provides structured logging with context propagation for
// the windowrpq evaluator. It wraps the standard library's log/slog package
// so every component logs through one small, leveled surface instead of
// reaching into slog directly.
package rpqlog
