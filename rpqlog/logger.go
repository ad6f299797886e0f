package rpqlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// contextKey namespaces context keys to avoid collisions with other packages.
type contextKey string

// ContextKeyLogger is the context key under which a *Logger is stored.
const ContextKeyLogger contextKey = "rpqlog.logger"

// Logger wraps slog.Logger with windowrpq-specific convenience methods.
type Logger struct {
	logger *slog.Logger
}

// Config holds logger construction parameters.
type Config struct {
	// Level is the minimum level logged: "debug", "info", "warn", "error".
	Level string
	// Output is where logs are written. Defaults to os.Stdout if nil.
	Output io.Writer
	// Pretty selects human-readable text output instead of JSON.
	Pretty bool
	// IncludeCaller adds source file:line to each record.
	IncludeCaller bool
}

// DefaultConfig returns the evaluator's default logging configuration: info
// level, JSON to stdout, no caller info.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Output:        os.Stdout,
		Pretty:        false,
		IncludeCaller: false,
	}
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}
	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// Discard returns a Logger whose output is dropped. Used as the zero-value
// default wherever a caller constructs a component without supplying one.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithContext attaches the logger to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, l)
}

// FromContext retrieves the logger stashed by WithContext, or a discarding
// logger if none was attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ContextKeyLogger).(*Logger); ok {
		return l
	}
	return Discard()
}

// WithField returns a derived Logger with one extra structured field.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{logger: l.logger.With(slog.Any(key, value))}
}

// WithError returns a derived Logger with an "error" field attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With(slog.Any("error", err))}
}

func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }
func (l *Logger) Info(msg string)  { l.logger.Info(msg) }
func (l *Logger) Warn(msg string)  { l.logger.Warn(msg) }
func (l *Logger) Error(msg string) { l.logger.Error(msg) }

func (l *Logger) Debugf(format string, args ...any) { l.logger.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.logger.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.logger.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.logger.Error(fmt.Sprintf(format, args...)) }

// Slog returns the underlying *slog.Logger for callers that need it directly.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}
