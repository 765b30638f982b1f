package diagnostic

import (
	"context"
	"log/slog"
)

// loggerKey is the context key a host embedding the front end uses to
// thread a *slog.Logger down to an Engine. Kept private to this package,
// exposed only through ContextWithLogger/LoggerFromContext.
type loggerKey struct{}

// ContextWithLogger returns a copy of ctx carrying logger, retrievable by
// LoggerFromContext.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext retrieves the logger attached by ContextWithLogger,
// falling back to a discarding logger so a caller that never threaded one
// through still gets a safe, silent *slog.Logger rather than a nil panic.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// slogLevel maps a Diagnostic's Severity to the slog level EmitContext logs
// it at: a Note is greppable at Debug, a Warning at Warn, an Error at
// Error. There is no slog equivalent of "note" so Debug is the closest fit.
func slogLevel(sev Severity) slog.Level {
	switch sev {
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
