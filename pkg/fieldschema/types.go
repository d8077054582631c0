package fieldschema

import (
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/render"
)

// Field is one configured control.
type Field struct {
	Kind          render.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
	model.Options `yaml:",inline"`

	// Source is the file the field was loaded from.
	Source string `json:"-" yaml:"-"`
}

// Document is the on-disk shape of an option file.
type Document struct {
	Page   string           `json:"page,omitempty" yaml:"page,omitempty"`
	Fields map[string]Field `json:"fields" yaml:"fields"`
}

// Store holds the fields of every loaded file, keyed by unique identifier.
type Store struct {
	fields map[string]Field
	order  []string
}
