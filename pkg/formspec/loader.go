package formspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a form declaration from the provided filesystem.
// The format is selected by extension: .json parses as JSON, anything else as
// YAML (which also accepts JSON payloads).
func Load(fsys fs.FS, path string) (Form, error) {
	if fsys == nil {
		return Form{}, fmt.Errorf("formspec: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Form{}, fmt.Errorf("formspec: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a form declaration and validates it. The path argument is
// used for format detection and error context only.
func Parse(data []byte, path string) (Form, error) {
	var form Form

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("formspec: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("formspec: parse %s: %w", path, err)
		}
	}

	normalize(&form)
	if err := form.Validate(); err != nil {
		return Form{}, fmt.Errorf("formspec: %s: %w", path, err)
	}
	return form, nil
}

// Validate enforces the declaration contract: a form needs at least one
// field, every field needs a distinct non-empty name, kinds must be known,
// and radio groups must declare their options. Duplicate names are rejected
// here so the registry downstream can trust its name list.
func (f Form) Validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("form %q declares no fields", f.ID)
	}

	seen := make(map[string]struct{}, len(f.Fields))
	for idx, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("form %q: field %d has an empty name", f.ID, idx)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("form %q: duplicate field name %q", f.ID, name)
		}
		seen[name] = struct{}{}

		switch field.Kind {
		case KindText, KindTextarea, KindPassword:
		case KindRadio:
			if len(field.Options) == 0 {
				return fmt.Errorf("form %q: radio field %q declares no options", f.ID, name)
			}
		default:
			return fmt.Errorf("form %q: field %q has unknown kind %q", f.ID, name, field.Kind)
		}
	}
	return nil
}

func normalize(form *Form) {
	form.ID = strings.TrimSpace(form.ID)
	form.Method = strings.ToUpper(strings.TrimSpace(form.Method))
	if form.Method == "" {
		form.Method = "POST"
	}
	for idx := range form.Fields {
		field := &form.Fields[idx]
		field.Name = strings.TrimSpace(field.Name)
		if field.Kind == "" {
			field.Kind = KindText
		}
	}
}
