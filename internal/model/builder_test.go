package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/internal/model"
)

func TestSyncFieldsDerivesFromText(t *testing.T) {
	form := &model.Form{Text: "Hi {{Full Name}}, your {{Order Number}} shipped."}

	model.SyncFields(form)

	want := []model.Field{
		{ID: "full_name", Label: "Full Name", Type: model.FieldTypeString},
		{ID: "order_number", Label: "Order Number", Type: model.FieldTypeString},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncFieldsKeepsConfiguredAttributes(t *testing.T) {
	form := &model.Form{
		Text: "Rate us: {{Rating}} {{Comments}}",
		Fields: []model.Field{
			{ID: "rating", Label: "Rating", Type: model.FieldTypeNumber, Required: true},
			{ID: "stale", Label: "Removed Earlier"},
		},
	}

	model.SyncFields(form)

	want := []model.Field{
		{ID: "rating", Label: "Rating", Type: model.FieldTypeNumber, Required: true},
		{ID: "comments", Label: "Comments", Type: model.FieldTypeString},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureFieldsRespectsPinnedList(t *testing.T) {
	pinned := []model.Field{{ID: "kept", Label: "Kept"}}
	form := &model.Form{Text: "{{Other}}", Fields: pinned}

	model.EnsureFields(form)

	if diff := cmp.Diff(pinned, form.Fields); diff != "" {
		t.Fatalf("pinned fields changed (-want +got):\n%s", diff)
	}
}

func TestEnsureFieldsCompletesDeclaredList(t *testing.T) {
	form := &model.Form{Fields: []model.Field{{ID: "contact_email"}}}

	model.EnsureFields(form)

	want := []model.Field{{ID: "contact_email", Label: "Contact Email"}}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeFields(t *testing.T) {
	form := &model.Form{
		Fields: []model.Field{
			{Label: "  First Name  "},
			{ID: "contact_email"},
			{},
		},
	}

	model.NormalizeFields(form)

	want := []model.Field{
		{ID: "first_name", Label: "First Name"},
		{ID: "contact_email", Label: "Contact Email"},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelsPriority(t *testing.T) {
	text := "{{From Text}}"

	fromFields := model.Form{
		Text:        text,
		Fields:      []model.Field{{ID: "pinned", Label: "Pinned"}},
		FieldLabels: map[string]string{"mapped": "Mapped"},
	}
	if got := model.Labels(fromFields); len(got) != 1 || got[0].ID != "pinned" {
		t.Fatalf("expected pinned fields to win, got %+v", got)
	}

	fromMapping := model.Form{
		Text:        text,
		FieldLabels: map[string]string{"b": "B", "a": "A"},
	}
	got := model.Labels(fromMapping)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected sorted mapping pairs, got %+v", got)
	}

	fromText := model.Form{Text: text}
	if got := model.Labels(fromText); len(got) != 1 || got[0].ID != "from_text" {
		t.Fatalf("expected extraction fallback, got %+v", got)
	}
}
