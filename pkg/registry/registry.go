package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/model"
)

var (
	// ErrFieldIDRequired is returned when a field registers without an id.
	ErrFieldIDRequired = errors.New("registry: field id is required")
	// ErrEvaluatorRequired is returned when a field registers without an
	// evaluator.
	ErrEvaluatorRequired = errors.New("registry: evaluator is required")
	// ErrDuplicateField is returned when an id is registered twice.
	ErrDuplicateField = errors.New("registry: field already registered")
)

// ContainerSuffix is appended to a field id to form the id of the region the
// host wraps around the control.
const ContainerSuffix = "_Container"

// Evaluator is the capability a field hands to the page-level orchestrator.
type Evaluator interface {
	Evaluate() model.Outcome
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func() model.Outcome

// Evaluate calls the underlying function.
func (fn EvaluatorFunc) Evaluate() model.Outcome {
	return fn()
}

// Anchors locate a field for page summary links.
type Anchors struct {
	// Container is the jump target for the summary link.
	Container string
	// Focus is the element that receives keyboard focus.
	Focus string
}

// DefaultAnchors derives the conventional anchors for a field id.
func DefaultAnchors(fieldID string) Anchors {
	id := strings.TrimSpace(fieldID)
	return Anchors{
		Container: id + ContainerSuffix,
		Focus:     id,
	}
}

// Failure is one field reported by EvaluateAll.
type Failure struct {
	FieldID           string
	Message           string
	Link              string
	ContainerAnchorID string
	FocusAnchorID     string
}

// Registry holds one validation entry per field on a page. It is owned by the
// page orchestrator and passed to each field at construction.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	logger  zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and evaluation events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*Entry),
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register publishes the evaluator under fieldID. Zero-value anchors fall back
// to DefaultAnchors.
func (r *Registry) Register(fieldID string, evaluator Evaluator, anchors Anchors) (*Entry, error) {
	id := strings.TrimSpace(fieldID)
	if id == "" {
		return nil, ErrFieldIDRequired
	}
	if evaluator == nil {
		return nil, ErrEvaluatorRequired
	}

	defaults := DefaultAnchors(id)
	if strings.TrimSpace(anchors.Container) == "" {
		anchors.Container = defaults.Container
	}
	if strings.TrimSpace(anchors.Focus) == "" {
		anchors.Focus = defaults.Focus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, id)
	}

	entry := newEntry(id, evaluator, anchors)
	r.entries[id] = entry
	r.order = append(r.order, id)

	r.logger.Debug().Str("field", id).Str("container", anchors.Container).Msg("validator registered")
	return entry, nil
}

// Lookup returns the entry registered under fieldID.
func (r *Registry) Lookup(fieldID string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[strings.TrimSpace(fieldID)]
	return entry, ok
}

// Entries returns the registered entries in registration order.
func (r *Registry) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Len reports the number of registered fields.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// EvaluateAll evaluates every entry, one at a time in registration order, and
// returns the failing fields. This is the fan-out a page submission performs.
func (r *Registry) EvaluateAll() []Failure {
	var failures []Failure
	for _, entry := range r.Entries() {
		if entry.Evaluate() {
			continue
		}
		snapshot := entry.Snapshot()
		failures = append(failures, Failure{
			FieldID:           snapshot.ControlToValidate,
			Message:           snapshot.LastErrorMessage,
			Link:              snapshot.ErrorMessage,
			ContainerAnchorID: snapshot.ContainerAnchorID,
			FocusAnchorID:     snapshot.FocusAnchorID,
		})
	}
	r.logger.Debug().Int("fields", r.Len()).Int("failures", len(failures)).Msg("page validated")
	return failures
}

// Reset drops every entry. Pages call it on teardown; fields never remove
// themselves.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*Entry)
	r.order = nil
}
