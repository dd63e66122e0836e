package formspec

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// SanitizedHelp returns the field's help text with markup stripped down to a
// small inline subset, safe to embed in HTML output. Declarations often come
// from external schema files, so the text is never trusted as-is.
func (f Field) SanitizedHelp() string {
	trimmed := strings.TrimSpace(f.Help)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(helpSanitizer().Sanitize(trimmed))
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "code", "br")
		helpPolicy = policy
	})
	return helpPolicy
}
