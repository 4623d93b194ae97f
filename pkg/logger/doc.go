// Package logger provides slog attribute constructors that keep attribute
// naming consistent across packages.
//
// # Usage
//
//	log.LogAttrs(ctx, slog.LevelWarn, "request error",
//	    logger.Error(err),
//	    logger.Component("guardhttp"),
//	)
//
// # Error Handling
//
// Error produces an attribute only when the supplied error value is non-nil,
// allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// Errors that implement slog.LogValuer, such as *guard.ArgumentError, are
// rendered as a group by any slog handler.
package logger
