package govuk

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/render"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

// ErrUnsupportedKind is returned for parameter bundles the renderer has no
// template for.
var ErrUnsupportedKind = errors.New("govuk: unsupported field kind")

// Renderer produces GOV.UK Design System markup from a parameter bundle.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	partials  map[string]string
	theme     themeContext
	logger    zerolog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Theme selection happens once, here.
func New(options ...Option) (*Renderer, error) {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engineOptions := make([]gotemplate.Option, 0, 2)
		if cfg.templateFS != nil {
			engineOptions = append(engineOptions, gotemplate.WithFS(cfg.templateFS))
		}
		engineOptions = append(engineOptions, gotemplate.WithFS(TemplatesFS()))

		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("govuk: configure template renderer: %w", err)
		}
		templates = engine
	}

	fallbacks := DefaultFallbacks()
	maps.Copy(fallbacks, cfg.fallbacks)

	themeCfg := cfg.theme
	if themeCfg == nil && cfg.selector != nil {
		selection, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("govuk: select theme %q: %w", cfg.themeName, err)
		}
		themeCfg = ThemeConfig(selection, fallbacks)
		if themeCfg != nil {
			cfg.logger.Debug().
				Str("theme", themeCfg.Theme).
				Str("variant", themeCfg.Variant).
				Msg("theme selected")
		}
	}

	partials := fallbacks
	if themeCfg != nil {
		maps.Copy(partials, themeCfg.Partials)
	}

	return &Renderer{
		templates: templates,
		partials:  partials,
		theme:     buildThemeContext(themeCfg),
		logger:    cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return "govuk"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the partial for the bundle's kind.
func (r *Renderer) Render(ctx context.Context, params render.Params) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := r.partials[partialKey(params.Kind)]
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, params.Kind)
	}

	out, err := r.templates.RenderTemplate(name, map[string]any{
		"field": params,
		"theme": r.theme,
	})
	if err != nil {
		return nil, fmt.Errorf("govuk: render %s %q: %w", params.Kind, params.ID, err)
	}
	r.logger.Debug().Str("field", params.ID).Str("template", name).Msg("field rendered")
	return []byte(out), nil
}

// Stylesheet is the themed stylesheet URL, or "" without a theme asset.
func (r *Renderer) Stylesheet() string {
	return r.theme.Stylesheet
}
