package tui

import "github.com/rs/zerolog"

// Theme captures the prefixes used when printing messages.
type Theme struct {
	HintPrefix  string
	ErrorPrefix string
}

// DefaultTheme mirrors the visually hidden "Error:" prefix of the HTML
// renderer.
func DefaultTheme() Theme {
	return Theme{
		HintPrefix:  "",
		ErrorPrefix: "Error: ",
	}
}

// Option configures the prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}

// WithMaxAttempts bounds how often a field is re-asked. Zero means no limit.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for prompt events.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Prompter) {
		p.logger = logger
	}
}
