package registry

import "fmt"

// Handle is a live reference to a rendered input control. Rendering layers
// implement it for whatever backs the field (an interactive prompt, a bound
// server-side value, a test stub).
type Handle interface {
	// Value reports the control's current text content. Reads go through to
	// the live control; the registry never caches values.
	Value() string
	// Focus returns user attention to the control. Calling Focus on an
	// absent handle is a caller error; check Present first or go through
	// MustHandle.
	Focus()
}

// Callback attaches a field to the registry. The rendering layer invokes it
// with a non-nil handle when the field mounts and with nil when it unmounts.
type Callback func(Handle)

// FieldValue is one entry of a best-effort snapshot. Present distinguishes a
// mounted field with an empty value from a field that has no handle at all.
type FieldValue struct {
	Name    string
	Value   string
	Present bool
}

// Pair is a single (name, value) entry of a submission payload.
type Pair struct {
	Name  string
	Value string
}

// Payload is the ordered set of collected values, one pair per declared
// field, ready to be materialized into a request body.
type Payload []Pair

// Registry maps a fixed, ordered set of field names to the handles of the
// controls currently rendered for them. The name list is the single source of
// truth shared with the rendering layer; it never changes after construction
// and the handle map always carries exactly those keys.
//
// A Registry is owned by the single form instance that created it and is not
// safe for concurrent use. Mount callbacks always run before any accessor
// fired by a later event, so reads observe a settled mapping.
type Registry struct {
	names   []string
	handles map[string]Handle
}

// New creates a registry with every field absent. Names must be distinct;
// passing duplicates is a caller contract violation (the formspec layer
// rejects duplicates at declaration time).
func New(names ...string) *Registry {
	r := &Registry{
		names:   append([]string(nil), names...),
		handles: make(map[string]Handle, len(names)),
	}
	for _, name := range r.names {
		r.handles[name] = nil
	}
	return r
}

// Names returns a copy of the declared field names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Register returns the mount callback for name. When the callback receives a
// non-nil handle it stores it; nil clears the slot. Registering a name that
// was never declared is a silent no-op, so stray fields cannot corrupt the
// mapping. The callback itself never fails.
func (r *Registry) Register(name string) Callback {
	return func(h Handle) {
		if _, ok := r.handles[name]; !ok {
			return
		}
		r.handles[name] = h
	}
}

// Value reads the current value of the field registered at name. It fails
// with *UnregisteredFieldError when no handle is mounted: reading before
// render (or after unmount) is a usage bug that must surface, not an empty
// string.
func (r *Registry) Value(name string) (string, error) {
	h := r.handles[name]
	if h == nil {
		return "", &UnregisteredFieldError{Field: name}
	}
	return h.Value(), nil
}

// AllValues snapshots every declared field in declaration order. Fields with
// no mounted handle are reported with Present=false rather than an error;
// this is the designated best-effort accessor for partial state (logging a
// half-mounted form, for example).
func (r *Registry) AllValues() []FieldValue {
	out := make([]FieldValue, 0, len(r.names))
	for _, name := range r.names {
		fv := FieldValue{Name: name}
		if h := r.handles[name]; h != nil {
			fv.Value = h.Value()
			fv.Present = true
		}
		out = append(out, fv)
	}
	return out
}

// Payload collects every field into an ordered submission payload. Unlike
// AllValues it is all-or-nothing: if any declared field lacks a handle it
// fails with *UnregisteredFieldError naming the first such field, and no
// partial payload is returned.
func (r *Registry) Payload() (Payload, error) {
	out := make(Payload, 0, len(r.names))
	for _, name := range r.names {
		h := r.handles[name]
		if h == nil {
			return nil, &UnregisteredFieldError{Field: name}
		}
		out = append(out, Pair{Name: name, Value: h.Value()})
	}
	return out, nil
}

// Handle returns the handle currently mounted at name, or nil when the field
// is absent (never declared, not yet mounted, or already unmounted). Callers
// must check Present before invoking Focus.
func (r *Registry) Handle(name string) Handle {
	return r.handles[name]
}

// MustHandle returns the mounted handle for name or panics with a descriptive
// message. Use it where an absent handle can only mean a programming error.
func (r *Registry) MustHandle(name string) Handle {
	h := r.handles[name]
	if h == nil {
		panic(fmt.Sprintf("registry: field %q has no registered handle", name))
	}
	return h
}

// Present reports whether h refers to a mounted control.
func Present(h Handle) bool {
	return h != nil
}
