// Package logger provides a structured logging interface backed by zap.
//
// It exposes a small leveled API so the library's packages can log state
// transitions without binding callers to a concrete logging implementation.
// Callers that already run their own zap setup can wrap it with FromZap;
// everyone else builds one from Config.
package logger

import (
	"errors"

	"github.com/code19m/errx"
	"go.uber.org/zap"
)

// Logger is the logging interface used across the library.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(args ...any)
	// Info logs a message at info level.
	Info(args ...any)
	// Warn logs a message at warn level.
	Warn(args ...any)
	// Error logs a message at error level.
	Error(args ...any)

	// Debugw logs a message with key-value pairs at debug level.
	Debugw(msg string, keysAndValues ...any)
	// Infow logs a message with key-value pairs at info level.
	Infow(msg string, keysAndValues ...any)
	// Warnw logs a message with key-value pairs at warn level.
	Warnw(msg string, keysAndValues ...any)
	// Errorw logs a message with key-value pairs at error level.
	Errorw(msg string, keysAndValues ...any)

	// Errorx logs an error at error level, expanding errx.ErrorX metadata
	// (code, type, trace, details) into structured fields when present.
	Errorx(err error)

	// With returns a logger that includes the given key-value pairs in all
	// subsequent entries.
	With(keysAndValues ...any) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	Sync() error
}

// logger implements Logger on top of zap's SugaredLogger.
type logger struct {
	*zap.SugaredLogger
}

// New builds a Logger from cfg. Defaults are applied and the config is
// validated before the underlying zap logger is constructed.
func New(cfg Config) (Logger, error) {
	if err := cfg.resolve(); err != nil {
		return nil, errx.Wrap(err)
	}

	if cfg.Disable {
		return NewNop(), nil
	}

	zapConfig, err := cfg.zapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &logger{zapLogger.Sugar()}, nil
}

// NewNop returns a Logger that discards everything. It is the default for
// packages whose callers configure no logger.
func NewNop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) Logger {
	return &logger{l.Sugar()}
}

func (l *logger) Errorx(err error) {
	if err == nil {
		l.Error("unknown error")
		return
	}

	var e errx.ErrorX
	if errors.As(err, &e) {
		l.With(
			"error_code", e.Code(),
			"error_type", e.Type().String(),
			"error_trace", e.Trace(),
			"error_details", e.Details(),
		).Error(err.Error())
		return
	}
	l.Error(err.Error())
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{l.SugaredLogger.With(keysAndValues...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}
