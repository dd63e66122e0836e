package submission

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/goliatone/go-fieldref/pkg/registry"
)

// EncodeMultipart writes the payload as a multipart/form-data body, one part
// per pair in payload order, followed by the hidden fields in sorted order.
// It returns the Content-Type value (including the boundary) callers should
// send alongside the body.
func EncodeMultipart(w io.Writer, payload registry.Payload, hidden ...HiddenField) (string, error) {
	writer := multipart.NewWriter(w)
	for _, pair := range payload {
		if err := writer.WriteField(pair.Name, pair.Value); err != nil {
			return "", fmt.Errorf("submission: write field %q: %w", pair.Name, err)
		}
	}
	for _, field := range SortedHiddenFields(MergeHiddenFields(nil, hidden...)) {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return "", fmt.Errorf("submission: write hidden field %q: %w", field.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("submission: finalize body: %w", err)
	}
	return writer.FormDataContentType(), nil
}

// EncodeURLValues encodes the payload as an application/x-www-form-urlencoded
// body. Pairs keep payload order; hidden fields follow in sorted order.
// url.Values.Encode is avoided because it reorders keys alphabetically.
func EncodeURLValues(payload registry.Payload, hidden ...HiddenField) string {
	var builder strings.Builder
	writePair := func(name, value string) {
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(value))
	}

	for _, pair := range payload {
		writePair(pair.Name, pair.Value)
	}
	for _, field := range SortedHiddenFields(MergeHiddenFields(nil, hidden...)) {
		writePair(field.Name, field.Value)
	}
	return builder.String()
}

// EncodeJSON encodes the payload as a JSON object keyed by field name, with
// hidden fields merged in (hidden fields lose on name collisions). JSON
// objects carry no ordering, so callers needing the declaration order should
// use the multipart or urlencoded encodings.
func EncodeJSON(payload registry.Payload, hidden ...HiddenField) ([]byte, error) {
	body := make(map[string]string, len(payload)+len(hidden))
	for _, field := range SortedHiddenFields(MergeHiddenFields(nil, hidden...)) {
		body[field.Name] = field.Value
	}
	for _, pair := range payload {
		body[pair.Name] = pair.Value
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("submission: encode json: %w", err)
	}
	return data, nil
}
