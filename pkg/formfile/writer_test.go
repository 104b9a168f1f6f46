package formfile_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/formfile"
)

func TestSaveFormRoundTrip(t *testing.T) {
	form := model.Form{
		Name: "survey",
		Text: "Rate: {{Rating}}",
		Fields: []model.Field{
			{ID: "rating", Label: "Rating", Type: model.FieldTypeNumber, Required: true, Enum: []string{"1", "2", "3"}},
		},
	}

	for _, name := range []string{"form.json", "form.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := formfile.SaveForm(path, form); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}

		loaded, err := formfile.LoadForm(path)
		if err != nil {
			t.Fatalf("reload %s: %v", name, err)
		}
		if diff := cmp.Diff(form, loaded); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestSaveResponsesRoundTrip(t *testing.T) {
	responses := []model.Response{{
		ID:          "r-1",
		Respondent:  "ada@example.com",
		SubmittedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		Data: map[string]model.Value{
			"name":   model.StringValue("Ada"),
			"topics": model.StringsValue("compilers", "engines"),
			"seat":   model.NumberValue(4),
		},
	}}

	path := filepath.Join(t.TempDir(), "responses.json")
	if err := formfile.SaveResponses(path, responses); err != nil {
		t.Fatalf("save responses: %v", err)
	}

	loaded, err := formfile.LoadResponses(path)
	if err != nil {
		t.Fatalf("reload responses: %v", err)
	}
	if diff := cmp.Diff(responses, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendResponse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "responses.json")

	if err := formfile.AppendResponse(path, model.Response{ID: "r-1"}); err != nil {
		t.Fatalf("append to missing file: %v", err)
	}
	if err := formfile.AppendResponse(path, model.Response{ID: "r-2"}); err != nil {
		t.Fatalf("append to existing file: %v", err)
	}

	responses, err := formfile.LoadResponses(path)
	if err != nil {
		t.Fatalf("reload responses: %v", err)
	}
	if len(responses) != 2 || responses[0].ID != "r-1" || responses[1].ID != "r-2" {
		t.Fatalf("unexpected responses: %+v", responses)
	}
}

func TestFormatForPath(t *testing.T) {
	if format, err := formfile.FormatForPath("a/b.yml"); err != nil || format != formfile.FormatYAML {
		t.Fatalf("unexpected format %q, err %v", format, err)
	}
	if _, err := formfile.FormatForPath("notes.txt"); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}
