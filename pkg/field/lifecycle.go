package field

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/presentation"
	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/render"
)

func identifier(opts model.Options) (string, error) {
	id := strings.TrimSpace(opts.UniqueIdentifier)
	if id == "" {
		return "", ErrMissingIdentifier
	}
	return id, nil
}

func publish(reg *registry.Registry, id string, evaluator registry.Evaluator, logger zerolog.Logger) (*registry.Entry, error) {
	if reg == nil {
		logger.Debug().Str("field", id).Msg("no page registry, skipping registration")
		return nil, nil
	}
	entry, err := reg.Register(id, evaluator, registry.DefaultAnchors(id))
	if err != nil {
		return nil, fmt.Errorf("field: register %q: %w", id, err)
	}
	return entry, nil
}

// rebuildManager creates a presentation manager for the current options and
// carries an active error over to it.
func rebuildManager(id string, opts model.Options, previous *presentation.Manager) *presentation.Manager {
	hintID := render.HintID(opts)
	manager := presentation.New(id,
		presentation.WithHint(hintID != ""),
		presentation.WithDescribedBy(hintID),
	)
	if previous != nil {
		if state := previous.State(); state.Active {
			manager.Show(state.MessageText)
		}
	}
	return manager
}

func logOutcome(logger zerolog.Logger, id string, outcome model.Outcome) {
	if outcome.Valid {
		logger.Debug().Str("field", id).Msg("field valid")
		return
	}
	logger.Debug().
		Str("field", id).
		Str("rule", string(outcome.FailedRule)).
		Str("message", outcome.Message).
		Msg("field invalid")
}
