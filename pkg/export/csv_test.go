package export_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/export"
)

func surveyForm() model.Form {
	return model.Form{
		Name: "survey",
		Fields: []model.Field{
			{ID: "full_name", Label: "Full Name"},
			{ID: "colors", Label: "Colors", Type: model.FieldTypeArray},
		},
	}
}

func TestCSV(t *testing.T) {
	submitted := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	responses := []model.Response{
		{
			ID:          "r-001",
			Respondent:  "ada@example.com",
			SubmittedAt: submitted,
			Data: map[string]model.Value{
				"full_name": model.StringValue("Ada Lovelace"),
				"colors":    model.StringsValue("Red", "Blue"),
			},
		},
		{
			ID: "r-002",
			Data: map[string]model.Value{
				"full_name": model.StringValue(`He said, "hi"`),
			},
		},
	}

	want := "Response ID,Respondent,Submitted At,Full Name,Colors\r\n" +
		"r-001,ada@example.com,2026-03-14T09:30:00Z,Ada Lovelace,Red; Blue\r\n" +
		"r-002,,,\"He said, \"\"hi\"\"\",\r\n"

	if got := export.CSV(surveyForm(), responses); got != want {
		t.Fatalf("unexpected csv:\n got %q\nwant %q", got, want)
	}
}

func TestCSVQuotesHeaderLabels(t *testing.T) {
	form := model.Form{Fields: []model.Field{{ID: "name", Label: "Last, First"}}}

	want := "Response ID,Respondent,Submitted At,\"Last, First\"\r\n"
	if got := export.CSV(form, nil); got != want {
		t.Fatalf("unexpected csv:\n got %q\nwant %q", got, want)
	}
}

func TestCSVLeavesOtherCellsUnquoted(t *testing.T) {
	form := model.Form{Fields: []model.Field{{ID: "note", Label: "Note"}}}
	responses := []model.Response{{
		ID: "r-1",
		Data: map[string]model.Value{
			"note": model.StringsValue("semi; colons", "stay plain"),
		},
	}}

	got := export.CSV(form, responses)
	if !strings.Contains(got, "r-1,,,semi; colons; stay plain\r\n") {
		t.Fatalf("semicolons should not trigger quoting, got %q", got)
	}
}

func TestCSVWithFieldsSubsetAndOrder(t *testing.T) {
	responses := []model.Response{{
		ID: "r-1",
		Data: map[string]model.Value{
			"full_name": model.StringValue("Ada"),
			"colors":    model.StringValue("Red"),
		},
	}}

	got := export.CSV(surveyForm(), responses, export.WithFields("colors", "full_name", "missing"))

	want := "Response ID,Respondent,Submitted At,Colors,Full Name\r\n" +
		"r-1,,,Red,Ada\r\n"
	if got != want {
		t.Fatalf("unexpected csv:\n got %q\nwant %q", got, want)
	}
}

func TestCSVWithTimestampLayout(t *testing.T) {
	responses := []model.Response{{
		ID:          "r-1",
		SubmittedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}}

	got := export.CSV(surveyForm(), responses, export.WithTimestampLayout("2006-01-02"))
	if !strings.Contains(got, "r-1,,2026-03-14,") {
		t.Fatalf("expected custom timestamp layout, got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := export.WriteCSV(&sb, surveyForm(), nil); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if sb.String() != export.CSV(surveyForm(), nil) {
		t.Fatal("WriteCSV output diverged from CSV")
	}

	if err := export.WriteCSV(nil, surveyForm(), nil); err == nil {
		t.Fatal("expected nil writer to fail")
	}

	if err := export.WriteCSV(failingWriter{}, surveyForm(), nil); err == nil {
		t.Fatal("expected writer failure to propagate")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
