package govuk

import (
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
	fallbacks        map[string]string
	logger           zerolog.Logger
}

// WithTemplatesFS layers a host template bundle over the built-in one. Files
// with the same name replace the built-in templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir layers templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine. Template bundles are
// ignored when one is supplied.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies an already resolved theme configuration.
func WithTheme(themeCfg *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = themeCfg
	}
}

// WithThemeSelector resolves the named theme and variant when the renderer is
// constructed.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithThemeFallbacks sets the partials used when a theme does not override
// them. Keys follow the "govuk.<kind>" convention.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(cfg *config) {
		if len(fallbacks) == 0 {
			return
		}
		if cfg.fallbacks == nil {
			cfg.fallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			cfg.fallbacks[key] = value
		}
	}
}

// WithLogger sets the logger used for theme resolution and render events.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
