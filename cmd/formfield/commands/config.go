package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
)

// Config is read from the environment; flags override it.
type Config struct {
	LogLevel  string `env:"FORMFIELD_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FORMFIELD_LOG_FORMAT" envDefault:"console"`
	// Options is an option file or a directory of them.
	Options   string `env:"FORMFIELD_CONFIG" envDefault:"."`
	Renderer  string `env:"FORMFIELD_RENDERER" envDefault:"govuk"`
	Templates string `env:"FORMFIELD_TEMPLATES"`
	NoColor   bool   `env:"NO_COLOR"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Format is "console" or "json".
func newLogger(level, format string, w io.Writer, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console", "text":
		out = zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	case "json":
		out = w
	default:
		return zerolog.Logger{}, fmt.Errorf("invalid log format %q: must be console or json", format)
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

// newOrchestrator loads the option files named by cfg.Options.
func newOrchestrator(cfg Config, logger zerolog.Logger) (*orchestrator.Orchestrator, error) {
	path := strings.TrimSpace(cfg.Options)
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("options %s: %w", path, err)
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
	}
	if dir := strings.TrimSpace(cfg.Templates); dir != "" {
		options = append(options, orchestrator.WithTemplatesDir(dir))
	}
	if info.IsDir() {
		options = append(options, orchestrator.WithOptionsFS(os.DirFS(path)))
	} else {
		store, err := fieldschema.LoadFile(path)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithFieldStore(store))
	}

	gen := orchestrator.New(options...)
	if err := gen.Err(); err != nil {
		return nil, err
	}
	if gen.Store().Empty() {
		return nil, fmt.Errorf("options %s: no fields defined", path)
	}
	logger.Debug().Str("options", path).Int("fields", gen.Store().Len()).Msg("options loaded")
	return gen, nil
}
