package fieldref_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	fieldref "github.com/goliatone/go-fieldref"
	"github.com/goliatone/go-fieldref/pkg/formspec"
	"github.com/goliatone/go-fieldref/pkg/renderers/tui"
)

type scriptedDriver struct {
	answers []string
	choices []int
	radioAt int
	pos     int
}

func (d *scriptedDriver) next() (string, error) {
	if d.pos >= len(d.answers) {
		return "", errors.New("no answer scripted")
	}
	val := d.answers[d.pos]
	d.pos++
	return val, nil
}

func (d *scriptedDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	return d.next()
}

func (d *scriptedDriver) Password(_ context.Context, _ tui.InputConfig) (string, error) {
	return d.next()
}

func (d *scriptedDriver) TextArea(_ context.Context, _ tui.TextAreaConfig) (string, error) {
	return d.next()
}

func (d *scriptedDriver) Select(_ context.Context, _ tui.SelectConfig) (int, error) {
	if d.radioAt >= len(d.choices) {
		return -1, errors.New("no choice scripted")
	}
	val := d.choices[d.radioAt]
	d.radioAt++
	return val, nil
}

func TestCollect_EndToEnd(t *testing.T) {
	form := fieldref.Form{
		ID: "createDeck",
		Fields: []formspec.Field{
			{Name: "name", Kind: formspec.KindText},
			{Name: "desc", Kind: formspec.KindTextarea},
			{Name: "select", Kind: formspec.KindRadio, Options: []formspec.Option{
				{Value: "rouge"},
				{Value: "mage"},
			}},
		},
	}

	driver := &scriptedDriver{
		answers: []string{"Fire", "A deck"},
		choices: []int{0},
	}

	payload, err := fieldref.Collect(context.Background(), form, tui.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := fieldref.Payload{
		{Name: "name", Value: "Fire"},
		{Name: "desc", Value: "A deck"},
		{Name: "select", Value: "rouge"},
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFromForm_SharesFieldNames(t *testing.T) {
	form := fieldref.Form{
		ID: "f",
		Fields: []formspec.Field{
			{Name: "name", Kind: formspec.KindText},
			{Name: "desc", Kind: formspec.KindText},
		},
	}

	reg := fieldref.NewFromForm(form)
	if diff := cmp.Diff(form.FieldNames(), reg.Names()); diff != "" {
		t.Fatalf("registry and declaration disagree on fields (-want +got):\n%s", diff)
	}
}

func TestCollect_InvalidDeclaration(t *testing.T) {
	_, err := fieldref.Collect(context.Background(), fieldref.Form{ID: "bad"})
	if err == nil {
		t.Fatal("expected declaration error")
	}
}
