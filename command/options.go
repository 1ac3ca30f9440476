package command

import (
	"time"

	"github.com/rise-and-shine/reactive/logger"
)

const defaultName = "command"

// Options configures command behavior.
type Options struct {
	name          string
	logger        logger.Logger
	timeout       time.Duration
	retryAttempts uint
	retryDelay    time.Duration
	tracing       bool
}

// Option is a functional option for configuring a command.
type Option func(*Options)

// WithName sets the command name used in logs and trace spans.
func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

// WithLogger sets the logger for execution transitions and recovered
// panics. The default logger discards everything.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTimeout bounds each execution with a context deadline. Zero disables
// the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.timeout = timeout
	}
}

// WithRetry re-invokes a failing action up to attempts times in total,
// waiting delay between attempts. All attempts happen within one running
// window; subscribers observe a single execution.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *Options) {
		o.retryAttempts = attempts
		o.retryDelay = delay
	}
}

// WithTracing opens an OpenTelemetry span per execution.
func WithTracing() Option {
	return func(o *Options) {
		o.tracing = true
	}
}

func defaultOptions() Options {
	return Options{
		name:   defaultName,
		logger: logger.NewNop(),
	}
}
