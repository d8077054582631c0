package registry

import (
	"html"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/presentation"
)

// Entry is the published record for one field. Its validity and message are
// refreshed together by Evaluate.
type Entry struct {
	mu        sync.RWMutex
	id        string
	evaluator Evaluator
	anchors   Anchors

	isValid      bool
	errorMessage string
	lastMessage  string
	focusAnchor  string
}

// Snapshot is a consistent copy of an entry, shaped after the page validator
// contract (controltovalidate, isvalid, errormessage).
type Snapshot struct {
	ControlToValidate string `json:"controltovalidate"`
	IsValid           bool   `json:"isvalid"`
	// ErrorMessage is the summary link fragment, empty while valid.
	ErrorMessage      string `json:"errormessage,omitempty"`
	LastErrorMessage  string `json:"lastErrorMessage,omitempty"`
	ContainerAnchorID string `json:"containerAnchorId"`
	FocusAnchorID     string `json:"focusAnchorId"`
}

func newEntry(id string, evaluator Evaluator, anchors Anchors) *Entry {
	return &Entry{
		id:          id,
		evaluator:   evaluator,
		anchors:     anchors,
		isValid:     true,
		focusAnchor: anchors.Focus,
	}
}

// Evaluate runs the field's evaluator and stores the result.
func (e *Entry) Evaluate() bool {
	outcome := e.evaluator.Evaluate()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.isValid = outcome.Valid
	if outcome.Valid {
		e.errorMessage = ""
		e.focusAnchor = e.anchors.Focus
		return true
	}

	focus := strings.TrimSpace(outcome.FocusAnchorID)
	if focus == "" {
		focus = e.anchors.Focus
	}
	e.focusAnchor = focus
	e.lastMessage = outcome.Message
	e.errorMessage = SummaryLink(e.anchors.Container, focus, outcome.Message)
	return false
}

// ControlToValidate is the field id the entry is keyed by.
func (e *Entry) ControlToValidate() string {
	return e.id
}

// IsValid reports the result of the last evaluation. Entries start valid.
func (e *Entry) IsValid() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isValid
}

// ErrorMessage is the summary link fragment, empty while valid.
func (e *Entry) ErrorMessage() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.errorMessage
}

// LastErrorMessage is the plain text of the most recent failure.
func (e *Entry) LastErrorMessage() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastMessage
}

// Anchors returns the configured summary anchors.
func (e *Entry) Anchors() Anchors {
	return e.anchors
}

// Snapshot returns a consistent copy of the entry state.
func (e *Entry) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		ControlToValidate: e.id,
		IsValid:           e.isValid,
		ErrorMessage:      e.errorMessage,
		LastErrorMessage:  e.lastMessage,
		ContainerAnchorID: e.anchors.Container,
		FocusAnchorID:     e.focusAnchor,
	}
}

// SummaryLink renders the anchor fragment a page summary shows for a failing
// field: it jumps to the container and moves focus to the control.
func SummaryLink(containerID, focusID, message string) string {
	container := html.EscapeString(strings.TrimSpace(containerID))
	focus := html.EscapeString(strings.TrimSpace(focusID))

	var builder strings.Builder
	builder.WriteString(`<a href='#`)
	builder.WriteString(container)
	builder.WriteString(`' onclick="javascript:scrollToAndFocus('`)
	builder.WriteString(container)
	builder.WriteString(`', '`)
	builder.WriteString(focus)
	builder.WriteString(`'); return false;">`)
	builder.WriteString(presentation.SanitizeText(message))
	builder.WriteString(`</a>`)
	return builder.String()
}
