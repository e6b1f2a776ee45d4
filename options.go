package bloomgo

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/bloomgo/rollhash"
)

type options struct {
	hashFns    []rollhash.Function
	hashFnsSet bool
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures New and From.
//
// Options exist mainly to avoid exploding the constructor surface with
// variants; the zero-option call is the common case.
type Option func(*options)

// WithHashFunctions replaces the default three-function polynomial family.
//
// The list is ordered and the order is part of the filter's serialized
// compatibility: a buffer written by one filter is only meaningful to a
// filter restored with the identical list. Passing an explicit empty or nil
// list is rejected with ErrInvalidConstructorArguments; to keep the default
// family, omit the option entirely.
func WithHashFunctions(fns []rollhash.Function) Option {
	return func(o *options) {
		o.hashFns = fns
		o.hashFnsSet = true
	}
}

// WithLogger configures structured logging for filter operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for filter operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.hashFnsSet && len(o.hashFns) == 0 {
		return options{}, fmt.Errorf("%w: empty hash function list", ErrInvalidConstructorArguments)
	}
	if !o.hashFnsSet {
		o.hashFns = rollhash.DefaultFamily()
	}
	return o, nil
}
