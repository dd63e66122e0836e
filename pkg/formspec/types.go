package formspec

import "strings"

// Kind enumerates the control types the rendering layers know how to mount.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindPassword Kind = "password"
	KindRadio    Kind = "radio"
)

// Option is one selectable choice of a radio group.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Field declares a single input of a form: its identity, how it should be
// presented, and (for radio groups) the choices it offers.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Kind        Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	Help        string            `json:"help,omitempty" yaml:"help,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Options     []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Form is the authoritative declaration of a logical form: the ordered field
// list it carries is the single source of truth shared between the field
// registry and every rendered control, so the two can never disagree on which
// fields exist.
type Form struct {
	ID       string            `json:"id" yaml:"id"`
	Title    string            `json:"title,omitempty" yaml:"title,omitempty"`
	Method   string            `json:"method,omitempty" yaml:"method,omitempty"`
	Action   string            `json:"action,omitempty" yaml:"action,omitempty"`
	Fields   []Field           `json:"fields" yaml:"fields"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FieldNames returns the declared field names in declaration order, ready to
// seed a registry.
func (f Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// FieldByName returns the declaration for name.
func (f Form) FieldByName(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// DisplayLabel returns the label to present for the field, falling back to
// the field name.
func (f Field) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// DisplayLabel returns the label to present for the option, falling back to
// the option value.
func (o Option) DisplayLabel() string {
	if label := strings.TrimSpace(o.Label); label != "" {
		return label
	}
	return o.Value
}

// OptionValues returns the option values in declaration order.
func (f Field) OptionValues() []string {
	values := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		values = append(values, opt.Value)
	}
	return values
}
