package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/presentation"
)

// Kind names the control a parameter bundle describes.
type Kind string

const (
	KindTextInput Kind = "text-input"
	KindRadios    Kind = "radios"
)

// Input modes handed to the browser for numeric fields.
const (
	InputModeNumeric = "numeric"
	InputModeDecimal = "decimal"
	// WholeNumberPattern triggers the numeric keypad on iOS.
	WholeNumberPattern = "[0-9]*"
)

const (
	pageHeadingLabelClass  = "govuk-label--l"
	pageHeadingLegendClass = "govuk-fieldset__legend--l"
)

// Params is the bundle a template collaborator turns into markup. The core
// only ever builds the error message fragment itself.
type Params struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContainerID string `json:"containerId"`

	Label         string `json:"label"`
	LabelClasses  string `json:"labelClasses,omitempty"`
	IsPageHeading bool   `json:"isPageHeading"`
	Hint          string `json:"hint,omitempty"`
	HintID        string `json:"hintId,omitempty"`

	Classes          string `json:"classes,omitempty"`
	FormGroupClasses string `json:"formGroupClasses,omitempty"`
	InputMode        string `json:"inputmode,omitempty"`
	Pattern          string `json:"pattern,omitempty"`
	Spellcheck       bool   `json:"spellcheck"`
	Prefix           string `json:"prefix,omitempty"`
	Suffix           string `json:"suffix,omitempty"`
	Autocomplete     string `json:"autocomplete,omitempty"`
	Value            string `json:"value,omitempty"`

	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorID      string `json:"errorId,omitempty"`
	DescribedBy  string `json:"describedBy,omitempty"`

	Items []ItemParams `json:"items,omitempty"`
}

// ItemParams describes one radio option.
type ItemParams struct {
	ID      string `json:"id"`
	Value   string `json:"value"`
	Text    string `json:"text"`
	Hint    string `json:"hint,omitempty"`
	HintID  string `json:"hintId,omitempty"`
	Checked bool   `json:"checked"`
}

// HintID is the id given to the hint element of a field, or "" when the field
// has no hint.
func HintID(opts model.Options) string {
	if strings.TrimSpace(opts.Hint) == "" {
		return ""
	}
	return strings.TrimSpace(opts.UniqueIdentifier) + "-hint"
}

// BuildTextInput assembles the bundle for a text input.
func BuildTextInput(opts model.Options, cfg model.Configuration, value string, errs presentation.State) Params {
	params := baseParams(KindTextInput, opts, cfg, errs)
	params.Value = value
	params.Spellcheck = cfg.Spellcheck
	params.Prefix = cfg.Prefix
	params.Suffix = cfg.Suffix
	params.Autocomplete = strings.TrimSpace(opts.Autocomplete)

	classes := []string{string(cfg.WidthClass)}
	if errs.Active {
		classes = append(classes, "govuk-input--error")
	}
	params.Classes = joinClasses(classes...)

	switch cfg.NumericMode {
	case model.NumericWhole:
		params.InputMode = InputModeNumeric
		params.Pattern = WholeNumberPattern
		params.Spellcheck = false
	case model.NumericDecimal:
		params.InputMode = InputModeDecimal
		params.Spellcheck = false
	}

	if cfg.PageHeading {
		params.LabelClasses = pageHeadingLabelClass
	}
	return params
}

// BuildRadios assembles the bundle for a radios field. selected marks the
// checked items.
func BuildRadios(opts model.Options, cfg model.Configuration, selected []string, errs presentation.State) Params {
	params := baseParams(KindRadios, opts, cfg, errs)
	if cfg.PageHeading {
		params.LabelClasses = pageHeadingLegendClass
	}

	checked := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		checked[value] = struct{}{}
	}

	params.Items = make([]ItemParams, 0, len(opts.Items))
	for i, item := range opts.Items {
		id := params.ID
		if i > 0 {
			id = params.ID + "-" + strconv.Itoa(i+1)
		}
		text := item.Text
		if strings.TrimSpace(text) == "" {
			text = item.Value
		}
		entry := ItemParams{
			ID:    id,
			Value: item.Value,
			Text:  text,
			Hint:  item.Hint,
		}
		if strings.TrimSpace(item.Hint) != "" {
			entry.HintID = id + "-item-hint"
		}
		if _, ok := checked[item.Value]; ok {
			entry.Checked = true
		}
		params.Items = append(params.Items, entry)
	}
	return params
}

func baseParams(kind Kind, opts model.Options, cfg model.Configuration, errs presentation.State) Params {
	id := strings.TrimSpace(opts.UniqueIdentifier)
	params := Params{
		Kind:          kind,
		ID:            id,
		Name:          id,
		ContainerID:   id + "_Container",
		Label:         strings.TrimSpace(opts.Heading),
		IsPageHeading: cfg.PageHeading,
		Hint:          strings.TrimSpace(opts.Hint),
		HintID:        HintID(opts),
		DescribedBy:   errs.DescribedByAttr(),
	}
	if params.Label == "" {
		params.Label = model.FieldLabel(opts)
	}
	if errs.Active {
		params.FormGroupClasses = presentation.DefaultErrorGroupClass
		params.ErrorMessage = errs.MessageText
		params.ErrorID = errs.MessageID
	}
	return params
}

func joinClasses(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, " ")
}
