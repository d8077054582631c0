package presentation

// Option configures a Manager.
type Option func(*config)

type config struct {
	errorID     string
	hasHint     bool
	describedBy []string
}

// WithErrorID overrides the error element id (defaults to "<field>-error").
func WithErrorID(id string) Option {
	return func(cfg *config) {
		cfg.errorID = id
	}
}

// WithHint tells the manager a hint is rendered, so errors are placed after it
// rather than after the title.
func WithHint(present bool) Option {
	return func(cfg *config) {
		cfg.hasHint = present
	}
}

// WithDescribedBy seeds the description list with ids already referenced by
// the control. Space-separated values are split.
func WithDescribedBy(ids ...string) Option {
	return func(cfg *config) {
		cfg.describedBy = append(cfg.describedBy, ids...)
	}
}
