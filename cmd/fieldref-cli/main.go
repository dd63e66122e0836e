package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	fieldref "github.com/goliatone/go-fieldref"
	"github.com/goliatone/go-fieldref/pkg/formspec"
	"github.com/goliatone/go-fieldref/pkg/openapi"
	"github.com/goliatone/go-fieldref/pkg/submission"
)

func main() {
	formPath := flag.String("form", "", "form declaration path (YAML or JSON)")
	source := flag.String("source", "", "OpenAPI document path (alternative to -form)")
	operation := flag.String("operation", "", "operation ID when deriving from -source")
	format := flag.String("format", "json", "output format: json, form, or multipart")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	form, err := loadForm(ctx, *formPath, *source, *operation)
	if err != nil {
		log.Fatalf("Failed to load form declaration: %v", err)
	}

	payload, err := fieldref.Collect(ctx, form)
	if err != nil {
		log.Fatalf("Failed to collect values: %v", err)
	}

	body, err := encode(payload, *format)
	if err != nil {
		log.Fatalf("Failed to encode payload: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, body, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Payload written to %s\n", *output)
	} else {
		fmt.Println(string(body))
	}
}

func loadForm(ctx context.Context, formPath, source, operation string) (formspec.Form, error) {
	switch {
	case formPath != "":
		dir, name := filepath.Split(filepath.Clean(formPath))
		if dir == "" {
			dir = "."
		}
		return formspec.Load(os.DirFS(dir), name)
	case source != "":
		if operation == "" {
			return formspec.Form{}, fmt.Errorf("-operation is required with -source")
		}
		return openapi.DeriveForm(ctx, openapi.SourceFromFile(source), operation)
	default:
		return formspec.Form{}, fmt.Errorf("provide -form or -source")
	}
}

func encode(payload fieldref.Payload, format string) ([]byte, error) {
	switch format {
	case "json":
		return submission.EncodeJSON(payload)
	case "form":
		return []byte(submission.EncodeURLValues(payload)), nil
	case "multipart":
		var body bytes.Buffer
		contentType, err := submission.EncodeMultipart(&body, payload)
		if err != nil {
			return nil, err
		}
		return append([]byte("Content-Type: "+contentType+"\n\n"), body.Bytes()...), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
