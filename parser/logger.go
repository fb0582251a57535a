package parser

import (
	"context"
	"log/slog"

	"github.com/erraggy/oasfidelity/node"
)

// Logger receives structured diagnostics from the parser.
//
// Attributes are alternating key-value pairs, as in log/slog:
//
//	logger.Debug("kept value verbatim", "path", "servers[0].url", "kind", "raw", "literal", "hello")
//
// The parser logs one Debug line for every value it kept without
// interpreting (a raw scalar, an unknown enumeration literal, a reference or
// an extra field), one Info line per parsed document, and a Warn line when
// the document does not declare OpenAPI 3.0. Any logging library can be
// plugged in with a small adapter; NewSlogAdapter covers log/slog.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every line.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is used when no logger is configured.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter adapts a *slog.Logger to Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger; nil means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

// debugEnabled reports whether Debug lines would be written, so the
// per-event attributes are only built when they are used.
func (s *SlogAdapter) debugEnabled() bool {
	return s.logger.Enabled(context.Background(), slog.LevelDebug)
}

var _ Logger = (*SlogAdapter)(nil)

// eventLogger returns the decoder observer that logs each event at Debug
// level, or nil when l would discard them.
func eventLogger(l Logger) func(node.Event) {
	switch a := l.(type) {
	case NopLogger:
		return nil
	case *SlogAdapter:
		if !a.debugEnabled() {
			return nil
		}
	}
	return func(e node.Event) {
		l.Debug("kept value verbatim", "path", e.Path, "kind", e.Kind.String(), "literal", e.Literal)
	}
}
