package fieldref

import (
	"context"

	"github.com/goliatone/go-fieldref/pkg/formspec"
	"github.com/goliatone/go-fieldref/pkg/registry"
	"github.com/goliatone/go-fieldref/pkg/renderers/tui"
)

// Handle is a live reference to a rendered input control; alias exported via
// the root package for convenience.
type Handle = registry.Handle

// Registry maps a fixed field-name list to the handles currently mounted for
// those fields.
type Registry = registry.Registry

// Callback attaches a field's mount/unmount lifecycle to a registry.
type Callback = registry.Callback

// FieldValue is one entry of a best-effort value snapshot.
type FieldValue = registry.FieldValue

// Pair is a single (name, value) entry of a submission payload.
type Pair = registry.Pair

// Payload is the ordered set of collected values.
type Payload = registry.Payload

// UnregisteredFieldError reports a strict read of a field with no mounted
// handle.
type UnregisteredFieldError = registry.UnregisteredFieldError

// Form aliases the form declaration consumed by the rendering layers.
type Form = formspec.Form

// New creates a registry with every named field absent.
func New(names ...string) *Registry {
	return registry.New(names...)
}

// NewFromForm creates a registry seeded with a declaration's field names, so
// registry and renderer share the same source of truth.
func NewFromForm(form Form) *Registry {
	return registry.New(form.FieldNames()...)
}

// Collect runs an interactive terminal session over the declaration and
// returns the collected submission payload. It is the simplest entry point
// for callers that just want the filled-in values.
func Collect(ctx context.Context, form Form, options ...tui.Option) (Payload, error) {
	session, err := tui.NewSession(form, options...)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	if err := session.Run(ctx); err != nil {
		return nil, err
	}
	return session.Payload()
}
