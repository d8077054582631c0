package openapi

import (
	"io/fs"

	"github.com/rs/zerolog"
)

// Option configures a load before it runs.
type Option func(*config)

type config struct {
	files        fs.FS
	validate     bool
	externalRefs bool
	logger       zerolog.Logger
}

func newConfig(options ...Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithFileSystem resolves LoadFile paths against files instead of the
// operating system.
func WithFileSystem(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithValidation validates the whole document before fields are extracted.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

// WithExternalRefs allows $ref values that point outside the document.
func WithExternalRefs(enabled bool) Option {
	return func(cfg *config) {
		cfg.externalRefs = enabled
	}
}

// WithLogger sets the logger used for skipped properties.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
