package validator

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var diagnostics atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger routes the package's diagnostic records (debug level only) to l.
// A nil logger discards them, which is the default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	diagnostics.Store(l)
}

func pkgLogger() *slog.Logger {
	return diagnostics.Load()
}
