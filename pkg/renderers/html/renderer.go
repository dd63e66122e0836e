package html

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fieldref/pkg/formspec"
	"github.com/goliatone/go-fieldref/pkg/registry"
)

// Renderer produces a static HTML view of a declared form together with the
// values currently registered for it. Absent handles simply render empty
// controls (the snapshot path is best-effort), so a form can be rendered
// before anything is bound or re-rendered with a submission's values.
type Renderer struct {
	templates   TemplateRenderer
	themeConfig *theme.RendererConfig
	classes     map[string]string
	submitLabel string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplateRenderer injects a template engine. Defaults to the embedded
// pongo2-backed engine.
func WithTemplateRenderer(templates TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// WithTheme applies a resolved go-theme configuration. Theme tokens become
// CSS custom properties on the form element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.themeConfig = cfg
	}
}

// WithChromeClasses overrides individual chrome class names (form, title,
// field, radio, option, help, submit).
func WithChromeClasses(classes map[string]string) Option {
	return func(r *Renderer) {
		for key, value := range classes {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				r.classes[key] = trimmed
			}
		}
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			r.submitLabel = trimmed
		}
	}
}

// New constructs a renderer with the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		classes:     defaultChromeClasses(),
		submitLabel: "Submit",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := NewEngine(WithFS(TemplatesFS()))
		if err != nil {
			return nil, err
		}
		r.templates = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the form markup. The registry supplies current values via
// its best-effort snapshot; reg may be nil to render a pristine form.
func (r *Renderer) Render(ctx context.Context, form formspec.Form, reg *registry.Registry) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("html: %w", err)
	}

	values := make(map[string]string, len(form.Fields))
	if reg != nil {
		for _, fv := range reg.AllValues() {
			if fv.Present {
				values[fv.Name] = fv.Value
			}
		}
	}

	data := map[string]any{
		"form": map[string]any{
			"id":     form.ID,
			"title":  form.Title,
			"method": formMethod(form.Method),
			"action": form.Action,
		},
		"fields":       fieldsContext(form, values),
		"classes":      r.classes,
		"css_vars":     cssVarsStyle(r.themeConfig),
		"submit_label": r.submitLabel,
	}

	rendered, err := r.templates.Render("form", data)
	if err != nil {
		return nil, err
	}
	return []byte(rendered), nil
}

func fieldsContext(form formspec.Form, values map[string]string) []map[string]any {
	out := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		value, bound := values[field.Name]
		if !bound {
			value = field.Default
		}

		entry := map[string]any{
			"name":        field.Name,
			"label":       field.DisplayLabel(),
			"kind":        string(field.Kind),
			"input_type":  inputType(field.Kind),
			"value":       value,
			"placeholder": field.Placeholder,
			"help":        field.SanitizedHelp(),
		}

		if field.Kind == formspec.KindRadio {
			options := make([]map[string]any, 0, len(field.Options))
			for _, opt := range field.Options {
				options = append(options, map[string]any{
					"value":   opt.Value,
					"label":   opt.DisplayLabel(),
					"checked": value != "" && opt.Value == value,
				})
			}
			entry["options"] = options
		}
		out = append(out, entry)
	}
	return out
}

func inputType(kind formspec.Kind) string {
	if kind == formspec.KindPassword {
		return "password"
	}
	return "text"
}

// formMethod keeps GET submissions as-is and folds everything else into
// POST; browsers only speak those two on form elements.
func formMethod(method string) string {
	if strings.EqualFold(method, "GET") {
		return "GET"
	}
	return "POST"
}

// cssVarsStyle flattens theme tokens into a deterministic style attribute of
// CSS custom properties.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}

	vars := make(map[string]string, len(cfg.CSSVars)+len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	for key, value := range cfg.CSSVars {
		vars[key] = value
	}
	if len(vars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		if builder.Len() > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(vars[key])
	}
	return builder.String()
}

func defaultChromeClasses() map[string]string {
	return map[string]string{
		"form":   "fieldref-form",
		"title":  "fieldref-title",
		"field":  "fieldref-field",
		"radio":  "fieldref-radio",
		"option": "fieldref-option",
		"help":   "fieldref-help",
		"submit": "fieldref-submit",
	}
}
