package presentation

import (
	"slices"
	"strings"
)

// Placement records where the error element sits relative to the field
// chrome.
type Placement string

const (
	PlacementNone       Placement = ""
	PlacementAfterHint  Placement = "after-hint"
	PlacementAfterTitle Placement = "after-title"
)

// Class names toggled by the manager.
const (
	DefaultErrorGroupClass   = "govuk-form-group--error"
	DefaultErrorMessageClass = "govuk-error-message"
	DefaultVisuallyHidden    = "govuk-visually-hidden"
)

// State is the presentation state of one field. At most one error is active.
type State struct {
	Active      bool      `json:"active"`
	MessageID   string    `json:"messageId,omitempty"`
	MessageText string    `json:"messageText,omitempty"`
	Placement   Placement `json:"placement,omitempty"`
	// ErrorStyled mirrors the error modifier on the form group.
	ErrorStyled bool     `json:"errorStyled"`
	DescribedBy []string `json:"describedBy,omitempty"`
}

// DescribedByAttr joins the description list into an aria-describedby value.
func (s State) DescribedByAttr() string {
	return strings.Join(s.DescribedBy, " ")
}

// Manager owns the error state of a single field instance. It is not shared
// between fields.
type Manager struct {
	errorID     string
	hasHint     bool
	state       State
	lastMessage string
}

// New builds a manager for the field identified by fieldID. describedBy seeds
// the accessibility description list with the ids already present on the
// control (typically the hint id).
func New(fieldID string, options ...Option) *Manager {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	errorID := strings.TrimSpace(cfg.errorID)
	if errorID == "" {
		errorID = strings.TrimSpace(fieldID) + "-error"
	}

	return &Manager{
		errorID: errorID,
		hasHint: cfg.hasHint,
		state: State{
			DescribedBy: normalizeIDs(cfg.describedBy),
		},
	}
}

// ErrorID is the identifier of the error element.
func (m *Manager) ErrorID() string {
	return m.errorID
}

// Show surfaces message as the single active error.
func (m *Manager) Show(message string) State {
	m.Hide()

	m.state.Active = true
	m.state.ErrorStyled = true
	m.state.MessageID = m.errorID
	m.state.MessageText = message
	if m.hasHint {
		m.state.Placement = PlacementAfterHint
	} else {
		m.state.Placement = PlacementAfterTitle
	}
	if !slices.Contains(m.state.DescribedBy, m.errorID) {
		m.state.DescribedBy = append(m.state.DescribedBy, m.errorID)
	}

	m.lastMessage = message
	return m.State()
}

// Hide clears the active error. It is a no-op when nothing is shown.
func (m *Manager) Hide() State {
	m.state.ErrorStyled = false
	m.state.Active = false
	m.state.MessageID = ""
	m.state.MessageText = ""
	m.state.Placement = PlacementNone

	if idx := slices.Index(m.state.DescribedBy, m.errorID); idx >= 0 {
		m.state.DescribedBy = slices.Delete(m.state.DescribedBy, idx, idx+1)
	}
	return m.State()
}

// State returns a copy of the current presentation state.
func (m *Manager) State() State {
	out := m.state
	out.DescribedBy = slices.Clone(m.state.DescribedBy)
	return out
}

// LastMessage is the most recent message passed to Show. It survives Hide so
// a page summary can still read it.
func (m *Manager) LastMessage() string {
	return m.lastMessage
}

func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, part := range strings.Fields(id) {
			if !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
