package host

import (
	"context"
	"log/slog"
	"os"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// SlogAdapter routes Wails runtime log output into slog.
type SlogAdapter struct {
	log *slog.Logger
}

// NewSlogAdapter returns a Wails logger writing to l, or to slog.Default when l is nil.
func NewSlogAdapter(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{log: l.With("component", "wails")}
}

var _ wailslogger.Logger = (*SlogAdapter)(nil)

func (a *SlogAdapter) Print(message string)   { a.log.Info(message) }
func (a *SlogAdapter) Trace(message string)   { a.log.Debug(message, "trace", true) }
func (a *SlogAdapter) Debug(message string)   { a.log.Debug(message) }
func (a *SlogAdapter) Info(message string)    { a.log.Info(message) }
func (a *SlogAdapter) Warning(message string) { a.log.Warn(message) }
func (a *SlogAdapter) Error(message string)   { a.log.Error(message) }

// Fatal logs at error level and terminates the process.
func (a *SlogAdapter) Fatal(message string) {
	a.log.Log(context.Background(), slog.LevelError, message, "fatal", true)
	os.Exit(1)
}

// wailsLevel maps the slog level enabled on l to the Wails log level.
func wailsLevel(l *slog.Logger) wailslogger.LogLevel {
	ctx := context.Background()
	switch {
	case l.Enabled(ctx, slog.LevelDebug):
		return wailslogger.DEBUG
	case l.Enabled(ctx, slog.LevelInfo):
		return wailslogger.INFO
	case l.Enabled(ctx, slog.LevelWarn):
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}
