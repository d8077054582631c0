package field

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// NotifyFunc is called whenever a field commits a new value.
type NotifyFunc func(fieldID, value string)

// Option configures a field.
type Option func(*config)

type config struct {
	registry *registry.Registry
	logger   zerolog.Logger
	notify   NotifyFunc
	pipeline *validation.Pipeline
	value    string
}

func newConfig(options ...Option) config {
	cfg := config{
		logger:   zerolog.Nop(),
		pipeline: validation.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithRegistry publishes the field into the page registry. Without one the
// field validates locally and contributes nothing to a page summary.
func WithRegistry(reg *registry.Registry) Option {
	return func(cfg *config) {
		cfg.registry = reg
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithNotify registers the host callback fired on every committed value.
func WithNotify(fn NotifyFunc) Option {
	return func(cfg *config) {
		cfg.notify = fn
	}
}

// WithPipeline replaces the built-in text input rules. Radios ignore it.
func WithPipeline(pipeline *validation.Pipeline) Option {
	return func(cfg *config) {
		if pipeline != nil {
			cfg.pipeline = pipeline
		}
	}
}

// WithValue seeds the committed value, or the selected item for radios.
func WithValue(value string) Option {
	return func(cfg *config) {
		cfg.value = value
	}
}
