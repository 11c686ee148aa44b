// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and attaches static attributes. WithEnvironment applies
// per-environment defaults; ParseLevel and ParseFormat turn configuration
// strings into options.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "infovalid"),
//	    logger.WithLevel(slog.LevelWarn),
//	)
//	log.Warn("batch finished with failures", logger.Counts(10, 2))
//
// Error returns an empty attribute for a nil error, so callers can pass it
// unconditionally.
package logger
