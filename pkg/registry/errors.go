package registry

import (
	"errors"
	"fmt"
)

// UnregisteredFieldError reports a strict accessor reading a field that has
// no mounted handle. The strict accessors never recover from it internally;
// it propagates to the caller (typically a submit handler) which decides
// whether to abort, log, or surface the field to the user.
type UnregisteredFieldError struct {
	Field string
}

func (e *UnregisteredFieldError) Error() string {
	return fmt.Sprintf("registry: field %q has no registered handle", e.Field)
}

// IsUnregistered reports whether err (or anything it wraps) is an
// UnregisteredFieldError.
func IsUnregistered(err error) bool {
	var target *UnregisteredFieldError
	return errors.As(err, &target)
}
