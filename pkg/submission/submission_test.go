package submission_test

import (
	"bytes"
	"encoding/json"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldref/pkg/registry"
	"github.com/goliatone/go-fieldref/pkg/submission"
)

func deckPayload() registry.Payload {
	return registry.Payload{
		{Name: "name", Value: "Fire"},
		{Name: "desc", Value: "A deck"},
		{Name: "select", Value: "rouge"},
	}
}

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := submission.MergeHiddenFields(base,
		submission.CSRFToken("_csrf", "token123"),
		submission.AuthToken(" auth_token ", "abc123"),
		submission.VersionField("version", 4),
		submission.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing":   "keep",
		"_csrf":      "token123",
		"auth_token": "abc123",
		"version":    "4",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	sorted := submission.SortedHiddenFields(merged)
	wantSorted := []submission.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "auth_token", Value: "abc123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(wantSorted, sorted); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeMultipart_OrderAndHiddenFields(t *testing.T) {
	var body bytes.Buffer
	contentType, err := submission.EncodeMultipart(&body, deckPayload(),
		submission.CSRFToken("_csrf", "token123"),
	)
	if err != nil {
		t.Fatalf("encode multipart: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("expected multipart/form-data, got %q", mediaType)
	}

	reader := multipart.NewReader(&body, params["boundary"])
	var got registry.Payload
	for {
		part, err := reader.NextPart()
		if err != nil {
			break
		}
		var value bytes.Buffer
		if _, err := value.ReadFrom(part); err != nil {
			t.Fatalf("read part: %v", err)
		}
		got = append(got, registry.Pair{Name: part.FormName(), Value: value.String()})
	}

	want := append(deckPayload(), registry.Pair{Name: "_csrf", Value: "token123"})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("multipart body mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeURLValues_PreservesPayloadOrder(t *testing.T) {
	got := submission.EncodeURLValues(deckPayload(),
		submission.VersionField("version", 2),
	)

	want := "name=Fire&desc=A+deck&select=rouge&version=2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeURLValues_EscapesReservedCharacters(t *testing.T) {
	payload := registry.Payload{
		{Name: "q value", Value: "a&b=c"},
	}

	got := submission.EncodeURLValues(payload)
	if !strings.Contains(got, "q+value=a%26b%3Dc") {
		t.Fatalf("expected escaped pair, got %q", got)
	}
}

func TestEncodeJSON_PayloadWinsOverHidden(t *testing.T) {
	data, err := submission.EncodeJSON(deckPayload(),
		submission.Hidden("name", "shadowed"),
		submission.CSRFToken("_csrf", "token123"),
	)
	if err != nil {
		t.Fatalf("encode json: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode json: %v", err)
	}

	want := map[string]string{
		"name":   "Fire",
		"desc":   "A deck",
		"select": "rouge",
		"_csrf":  "token123",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json body mismatch (-want +got):\n%s", diff)
	}
}
