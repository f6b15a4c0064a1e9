package logging

import "log/slog"

// ErrorAttr is the attribute every error is logged under.
func ErrorAttr(err error) slog.Attr {
	return slog.Any(FieldError, err)
}

// Debug logs at debug level when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning, attaching err when it is non-nil.
func Warn(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, ErrorAttr(err))
	}
	logger.Warn(msg, args...)
}

// Error logs an error when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, ErrorAttr(err))
	}
	logger.Error(msg, args...)
}
