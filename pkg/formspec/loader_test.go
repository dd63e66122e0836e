package formspec

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const deckFormYAML = `
id: createDeck
title: New Deck
action: /decks
fields:
  - name: name
    label: Deck name
    placeholder: Fire
  - name: desc
    label: Description
    kind: textarea
  - name: select
    label: Class
    kind: radio
    options:
      - value: rouge
      - value: mage
        label: Mage
`

const deckFormJSON = `{
  "id": "createDeck",
  "title": "New Deck",
  "action": "/decks",
  "fields": [
    {"name": "name", "label": "Deck name", "placeholder": "Fire"},
    {"name": "desc", "label": "Description", "kind": "textarea"},
    {"name": "select", "label": "Class", "kind": "radio", "options": [
      {"value": "rouge"},
      {"value": "mage", "label": "Mage"}
    ]}
  ]
}`

func TestLoad_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/deck.yaml": &fstest.MapFile{Data: []byte(deckFormYAML)},
	}

	form, err := Load(fsys, "forms/deck.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if form.ID != "createDeck" {
		t.Fatalf("expected form id createDeck, got %q", form.ID)
	}
	if form.Method != "POST" {
		t.Fatalf("expected default method POST, got %q", form.Method)
	}
	if diff := cmp.Diff([]string{"name", "desc", "select"}, form.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}

	field, ok := form.FieldByName("name")
	if !ok {
		t.Fatal("expected field name to exist")
	}
	if field.Kind != KindText {
		t.Fatalf("expected default kind text, got %q", field.Kind)
	}
}

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	fromYAML, err := Parse([]byte(deckFormYAML), "deck.yaml")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	fromJSON, err := Parse([]byte(deckFormJSON), "deck.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}

	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Fatalf("yaml and json declarations diverge (-yaml +json):\n%s", diff)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		form    Form
		wantErr string
	}{
		{
			name:    "no fields",
			form:    Form{ID: "empty"},
			wantErr: "declares no fields",
		},
		{
			name: "empty field name",
			form: Form{ID: "f", Fields: []Field{
				{Name: "  ", Kind: KindText},
			}},
			wantErr: "empty name",
		},
		{
			name: "duplicate field name",
			form: Form{ID: "f", Fields: []Field{
				{Name: "name", Kind: KindText},
				{Name: "name", Kind: KindText},
			}},
			wantErr: `duplicate field name "name"`,
		},
		{
			name: "radio without options",
			form: Form{ID: "f", Fields: []Field{
				{Name: "select", Kind: KindRadio},
			}},
			wantErr: "declares no options",
		},
		{
			name: "unknown kind",
			form: Form{ID: "f", Fields: []Field{
				{Name: "name", Kind: Kind("slider")},
			}},
			wantErr: "unknown kind",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDisplayLabels(t *testing.T) {
	field := Field{Name: "desc"}
	if got := field.DisplayLabel(); got != "desc" {
		t.Fatalf("expected fallback label, got %q", got)
	}

	option := Option{Value: "rouge", Label: "Rogue"}
	if got := option.DisplayLabel(); got != "Rogue" {
		t.Fatalf("expected explicit label, got %q", got)
	}
}

func TestSanitizedHelp(t *testing.T) {
	cases := []struct {
		name string
		help string
		want string
	}{
		{
			name: "plain text untouched",
			help: "pick a class",
			want: "pick a class",
		},
		{
			name: "inline markup kept",
			help: "use <strong>lowercase</strong> names",
			want: "use <strong>lowercase</strong> names",
		},
		{
			name: "script stripped",
			help: `<script>alert(1)</script>careful`,
			want: "careful",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field := Field{Help: tc.help}
			if got := field.SanitizedHelp(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
