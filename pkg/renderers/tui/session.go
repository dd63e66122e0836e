package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fieldref/pkg/formspec"
	"github.com/goliatone/go-fieldref/pkg/registry"
)

// Session is the terminal rendering layer for a declared form. Running it
// walks the declaration in order, prompts for each field, and mounts a live
// handle into the session's registry as each prompt completes. Later events
// (the caller's submit path) read the collected state back through the
// registry accessors, never through the session.
type Session struct {
	form     formspec.Form
	driver   PromptDriver
	reg      *registry.Registry
	pageSize int

	ctx     context.Context
	handles []*fieldHandle
	closed  bool
}

// NewSession validates the declaration and prepares a session whose registry
// is seeded with the form's field names.
func NewSession(form formspec.Form, options ...Option) (*Session, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	s := &Session{
		form:   form,
		driver: newSurveyDriver(),
		reg:    registry.New(form.FieldNames()...),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Registry exposes the session's field registry for the submit path.
func (s *Session) Registry() *registry.Registry {
	return s.reg
}

// Run prompts for every declared field in order. Each completed prompt
// mounts a handle for that field, so a partially-run session leaves earlier
// fields readable (AllValues) while strict accessors keep failing for the
// rest.
func (s *Session) Run(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx = ctx

	for _, field := range s.form.Fields {
		value, err := s.prompt(ctx, field, field.Default)
		if err != nil {
			return fmt.Errorf("tui: field %q: %w", field.Name, err)
		}

		h := &fieldHandle{session: s, field: field, value: value}
		s.reg.Register(field.Name)(h)
		s.handles = append(s.handles, h)
	}
	return nil
}

// Payload collects the session's values through the registry. It fails the
// same way the registry does when a field was never mounted.
func (s *Session) Payload() (registry.Payload, error) {
	return s.reg.Payload()
}

// Close unmounts every handle the session registered. Reads after Close fail
// with the registry's unregistered-field error, mirroring a torn-down form.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, h := range s.handles {
		s.reg.Register(h.field.Name)(nil)
	}
	s.handles = nil
}

func (s *Session) prompt(ctx context.Context, field formspec.Field, current string) (string, error) {
	switch field.Kind {
	case formspec.KindTextarea:
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: field.DisplayLabel(),
			Default: current,
			Help:    field.Help,
		})
	case formspec.KindPassword:
		return s.driver.Password(ctx, InputConfig{
			Message: field.DisplayLabel(),
			Help:    field.Help,
		})
	case formspec.KindRadio:
		return s.promptRadio(ctx, field, current)
	default:
		return s.driver.Input(ctx, InputConfig{
			Message:     field.DisplayLabel(),
			Default:     current,
			Help:        field.Help,
			Placeholder: field.Placeholder,
		})
	}
}

// promptRadio presents the radio group as a single-choice select. Labels are
// shown to the user; the stored value is always the option's declared value.
func (s *Session) promptRadio(ctx context.Context, field formspec.Field, current string) (string, error) {
	labels := make([]string, 0, len(field.Options))
	defaultIndex := 0
	for i, opt := range field.Options {
		labels = append(labels, opt.DisplayLabel())
		if current != "" && opt.Value == current {
			defaultIndex = i
		}
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      field.DisplayLabel(),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Help,
		PageSize:     s.pageSize,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(field.Options) {
		return "", fmt.Errorf("option index %d out of range", idx)
	}
	return field.Options[idx].Value, nil
}

// fieldHandle backs a mounted terminal field. Value is whatever the user
// last entered; Focus returns them to the prompt so they can change it.
type fieldHandle struct {
	session *Session
	field   formspec.Field
	value   string
}

func (h *fieldHandle) Value() string {
	return h.value
}

// Focus re-prompts the field with the current value as default. A failed or
// aborted re-prompt keeps the previous value.
func (h *fieldHandle) Focus() {
	if h.session.closed {
		return
	}
	ctx := h.session.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	value, err := h.session.prompt(ctx, h.field, h.value)
	if err != nil {
		return
	}
	h.value = value
}
