package openapi_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/openapi"
	"github.com/goliatone/go-formfill/pkg/placeholder"
)

const signupDocument = `{
  "openapi": "3.0.3",
  "info": { "title": "Signup", "version": "1.0.0" },
  "paths": {
    "/signups": {
      "post": {
        "operationId": "createSignup",
        "summary": "Conference signup",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fullName", "email"],
                "properties": {
                  "fullName": {
                    "type": "string",
                    "description": "Name as it should appear on the badge"
                  },
                  "email": { "type": "string", "format": "email" },
                  "seats": { "type": "integer", "default": 1 },
                  "newsletter": { "type": "boolean" },
                  "track": { "type": "string", "enum": ["go", "rust", "zig"] },
                  "days": {
                    "type": "array",
                    "items": { "type": "string", "enum": ["mon", "tue", "wed"] }
                  },
                  "company": {
                    "type": "object",
                    "required": ["name"],
                    "properties": {
                      "name": { "type": "string" },
                      "vatId": { "type": "string" }
                    }
                  }
                }
              }
            }
          }
        },
        "responses": {
          "201": { "description": "created" }
        }
      }
    }
  }
}`

func signupOperation(t *testing.T) openapi.Operation {
	t.Helper()

	doc := openapi.MustNewDocument(openapi.SourceFromBytes("signup", []byte(signupDocument)), []byte(signupDocument))
	operations, err := openapi.NewParser().Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	op, ok := operations["createSignup"]
	if !ok {
		t.Fatalf("operation createSignup missing, got %v", operations)
	}
	return op
}

func TestParserOperations(t *testing.T) {
	op := signupOperation(t)

	if op.Method != "POST" || op.Path != "/signups" {
		t.Errorf("unexpected operation identity: %s %s", op.Method, op.Path)
	}
	if op.Summary != "Conference signup" {
		t.Errorf("summary = %q", op.Summary)
	}
	if got := len(op.RequestBody.Properties); got != 7 {
		t.Errorf("request body properties = %d, want 7", got)
	}
}

func TestFormFromOperation(t *testing.T) {
	form := openapi.FormFromOperation(signupOperation(t))

	if form.Name != "Conference signup" {
		t.Errorf("form name = %q", form.Name)
	}

	want := []model.Field{
		{ID: "company_name", Label: "Company Name", Type: model.FieldTypeString, Required: true},
		{ID: "company_vat_id", Label: "Company Vat Id", Type: model.FieldTypeString},
		{ID: "days", Label: "Days", Type: model.FieldTypeArray, Enum: []string{"mon", "tue", "wed"}},
		{ID: "email", Label: "Email", Type: model.FieldTypeString, Format: "email", Required: true},
		{ID: "full_name", Label: "Full Name", Type: model.FieldTypeString, Required: true, Help: "Name as it should appear on the badge"},
		{ID: "newsletter", Label: "Newsletter", Type: model.FieldTypeBoolean},
		{ID: "seats", Label: "Seats", Type: model.FieldTypeNumber, Default: "1"},
		{ID: "track", Label: "Track", Type: model.FieldTypeString, Enum: []string{"go", "rust", "zig"}},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateScaffold(t *testing.T) {
	form := openapi.FormFromOperation(signupOperation(t))

	scaffold := openapi.TemplateScaffold(form)
	want := "Company Name: {{Company Name}}\n" +
		"Company Vat Id: {{Company Vat Id}}\n" +
		"Days: {{Days}}\n" +
		"Email: {{Email}}\n" +
		"Full Name: {{Full Name}}\n" +
		"Newsletter: {{Newsletter}}\n" +
		"Seats: {{Seats}}\n" +
		"Track: {{Track}}\n"
	if scaffold != want {
		t.Errorf("scaffold mismatch:\ngot:\n%s\nwant:\n%s", scaffold, want)
	}

	// The scaffold must round-trip through the extractor onto the same ids.
	extracted := placeholder.Extract(scaffold)
	for _, field := range form.Fields {
		if extracted[field.ID] != field.Label {
			t.Errorf("extracted[%q] = %q, want %q", field.ID, extracted[field.ID], field.Label)
		}
	}

	if got := openapi.TemplateScaffold(model.Form{}); got != "" {
		t.Errorf("fieldless scaffold = %q, want empty", got)
	}
}

func TestOperationsRecursiveSchema(t *testing.T) {
	const document = `{
  "openapi": "3.0.3",
  "info": { "title": "Tree", "version": "1.0.0" },
  "paths": {
    "/nodes": {
      "post": {
        "operationId": "createNode",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Node" }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Node": {
        "type": "object",
        "properties": {
          "label": { "type": "string" },
          "parent": { "$ref": "#/components/schemas/Node" }
        }
      }
    }
  }
}`

	doc := openapi.MustNewDocument(openapi.SourceFromBytes("tree", []byte(document)), []byte(document))
	operations, err := openapi.NewParser().Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	form := openapi.FormFromOperation(operations["createNode"])
	var labels []string
	for _, field := range form.Fields {
		labels = append(labels, field.Label)
	}
	if diff := cmp.Diff([]string{"Label", "Parent"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationsErrors(t *testing.T) {
	ctx := context.Background()
	parser := openapi.NewParser()

	if _, err := parser.Operations(ctx, openapi.Document{}); err == nil {
		t.Error("expected an error for an empty document")
	}

	noPaths := []byte(`{"openapi":"3.0.3","info":{"title":"Empty","version":"1.0.0"},"paths":{}}`)
	doc := openapi.MustNewDocument(openapi.SourceFromBytes("empty", noPaths), noPaths)
	if _, err := parser.Operations(ctx, doc); err == nil {
		t.Error("expected an error for a document without paths")
	}

	garbage := []byte(`{"not":"openapi"`)
	doc = openapi.MustNewDocument(openapi.SourceFromBytes("garbage", garbage), garbage)
	if _, err := parser.Operations(ctx, doc); err == nil {
		t.Error("expected an error for a malformed document")
	}
}

func TestLoadSources(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "signup.json")
	if err := os.WriteFile(path, []byte(signupDocument), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc, err := openapi.Load(ctx, openapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Error("file document is empty")
	}

	files := fstest.MapFS{
		"specs/signup.json": {Data: []byte(signupDocument)},
	}
	doc, err = openapi.Load(ctx, openapi.SourceFromFS("specs/signup.json"), openapi.WithFileSystem(files))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Location() != "specs/signup.json" {
		t.Errorf("location = %q", doc.Location())
	}

	doc, err = openapi.Load(ctx, openapi.SourceFromBytes("", []byte(signupDocument)))
	if err != nil {
		t.Fatalf("load bytes: %v", err)
	}
	if doc.Location() != "inline" {
		t.Errorf("bytes location = %q", doc.Location())
	}

	if _, err := openapi.Load(ctx, openapi.SourceFromFile(filepath.Join(t.TempDir(), "missing.json"))); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := openapi.Load(ctx, openapi.SourceFromFS("specs/signup.json")); err == nil {
		t.Error("expected an error when no filesystem is configured")
	}
}
