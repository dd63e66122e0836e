// Package registry tracks live references to the input controls of a single
// form. A Registry is constructed from the form's fixed, ordered field-name
// list; the rendering layer obtains a mount callback per field and invokes it
// as controls appear and disappear. Submit-time consumers read collected
// values back through the accessors: Value and Payload are strict and fail
// when a field has no mounted handle, AllValues is the designated best-effort
// snapshot and never fails. The registry holds references only; the rendering
// layer owns every control's lifetime.
package registry
