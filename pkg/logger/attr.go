package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records a validation kind under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Command records a CLI command path under the key "command".
func Command(path string) slog.Attr {
	return slog.String("command", path)
}

// Source records where input came from (a file path or "stdin").
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Counts groups pass/fail totals under the key "counts".
func Counts(passed, failed int) slog.Attr {
	return slog.Group("counts", slog.Int("passed", passed), slog.Int("failed", failed))
}
