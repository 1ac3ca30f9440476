package observable

import "github.com/rise-and-shine/reactive/logger"

const defaultName = "notifier"

// Options configures Notifier behavior.
type Options struct {
	name   string
	logger logger.Logger
}

// Option is a functional option for configuring a Notifier.
type Option func(*Options)

// WithName sets the name used as the logging scope.
func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

// WithLogger sets the logger used to report recovered listener panics.
// The default logger discards everything.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() Options {
	return Options{
		name:   defaultName,
		logger: logger.NewNop(),
	}
}
