package govuk

import (
	"maps"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/render"
)

// Partial and asset keys looked up in theme manifests.
const (
	PartialTextInput = "govuk.text-input"
	PartialRadios    = "govuk.radios"
	AssetStylesheet  = "govuk.stylesheet"
)

// DefaultFallbacks maps each partial key to its built-in template.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		PartialTextInput: "text-input.njk",
		PartialRadios:    "radios.njk",
	}
}

func partialKey(kind render.Kind) string {
	switch kind {
	case render.KindTextInput:
		return PartialTextInput
	case render.KindRadios:
		return PartialRadios
	default:
		return ""
	}
}

// ThemeConfig derives renderer configuration from a theme selection. Manifest
// values are applied first, then those of the selected variant. Every token
// is also exposed as a CSS custom property.
func ThemeConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string, len(fallbacks)),
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
	}
	maps.Copy(cfg.Partials, fallbacks)

	var prefix string
	files := make(map[string]string)
	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(cfg.Partials, manifest.Templates)
		maps.Copy(cfg.Tokens, manifest.Tokens)
		maps.Copy(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Partials, variant.Templates)
			maps.Copy(cfg.Tokens, variant.Tokens)
			maps.Copy(files, variant.Assets.Files)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

// themeContext is what templates see under "theme".
type themeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       maps.Clone(cfg.Tokens),
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(AssetStylesheet)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
