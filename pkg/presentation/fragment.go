package presentation

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips any markup from message and escapes what is left so it
// can be embedded in an HTML fragment.
func SanitizeText(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Fragment renders the error element for the active error. It returns an
// empty string when no error is shown.
func (m *Manager) Fragment() string {
	state := m.state
	if !state.Active {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(`<span class="`)
	builder.WriteString(DefaultErrorMessageClass)
	builder.WriteString(`" id="`)
	builder.WriteString(html.EscapeString(state.MessageID))
	builder.WriteString(`"><span class="`)
	builder.WriteString(DefaultVisuallyHidden)
	builder.WriteString(`">Error:</span> `)
	builder.WriteString(SanitizeText(state.MessageText))
	builder.WriteString(`</span>`)
	return builder.String()
}
