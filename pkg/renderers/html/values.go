package html

import "github.com/goliatone/go-fieldref/pkg/registry"

// ValueHandle backs a server-side field with a stored string. It lets a
// submission's posted values flow back through the registry contract so the
// form can be re-rendered with what the user sent. Focus is a no-op: there is
// no live control to move attention to.
type ValueHandle struct {
	value string
}

// NewValueHandle wraps a plain string as a handle.
func NewValueHandle(value string) *ValueHandle {
	return &ValueHandle{value: value}
}

func (h *ValueHandle) Value() string { return h.value }

func (h *ValueHandle) Focus() {}

// BindValues mounts a ValueHandle for every declared field present in
// values. Undeclared keys are dropped by the registry's own no-op rule;
// declared fields missing from values stay absent.
func BindValues(reg *registry.Registry, values map[string]string) {
	if reg == nil {
		return
	}
	for name, value := range values {
		reg.Register(name)(NewValueHandle(value))
	}
}
