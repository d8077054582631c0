package fieldschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/render"
)

// LoadFS walks fsys and parses every JSON/YAML option file. When fsys is nil
// or holds no option files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOptionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldschema: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		return store.add(doc, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single option file from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fieldschema: read %s: %w", path, err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	store := newStore()
	if err := store.add(doc, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes an option file. JSON is tried first, then YAML.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("fieldschema: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Document{}, fmt.Errorf("fieldschema: parse %s: invalid JSON or YAML", source)
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("fieldschema: encode: %w", err)
	}
	return enc.Close()
}

func newStore() *Store {
	return &Store{fields: make(map[string]Field)}
}

func (s *Store) add(doc Document, source string) error {
	keys := make([]string, 0, len(doc.Fields))
	for key := range doc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id := strings.TrimSpace(key)
		if id == "" {
			return fmt.Errorf("fieldschema: file %s defines an empty field id", source)
		}
		if _, exists := s.fields[id]; exists {
			return fmt.Errorf("fieldschema: duplicate field %q (file %s)", id, source)
		}

		f, err := normaliseField(doc.Fields[key], id, source)
		if err != nil {
			return err
		}
		s.fields[id] = f
		s.order = append(s.order, id)
	}
	return nil
}

func normaliseField(raw Field, id, source string) (Field, error) {
	out := raw
	out.Source = source

	if declared := strings.TrimSpace(raw.UniqueIdentifier); declared != "" && declared != id {
		return Field{}, fmt.Errorf("fieldschema: field %q (file %s) declares uniqueIdentifier %q", id, source, declared)
	}
	out.UniqueIdentifier = id
	out.Items = append(out.Items[:0:0], raw.Items...)

	switch render.Kind(strings.TrimSpace(string(raw.Kind))) {
	case "":
		out.Kind = render.KindTextInput
		if len(raw.Items) > 0 {
			out.Kind = render.KindRadios
		}
	case render.KindTextInput, render.KindRadios:
		out.Kind = render.Kind(strings.TrimSpace(string(raw.Kind)))
	default:
		return Field{}, fmt.Errorf("fieldschema: field %q (file %s) has unknown kind %q", id, source, raw.Kind)
	}
	return out, nil
}

// Field returns the configuration for id.
func (s *Store) Field(id string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	f, ok := s.fields[strings.TrimSpace(id)]
	return f, ok
}

// IDs lists the field ids in load order: files in walk order, ids sorted
// within a file.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len reports the number of fields.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s.Len() == 0
}

func isOptionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
