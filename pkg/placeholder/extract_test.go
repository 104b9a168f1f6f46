package placeholder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/pkg/placeholder"
)

func TestExtract(t *testing.T) {
	text := "Dear {{Full Name}},\n\nYour {{Order Number}} has shipped.\nThanks, {{Full Name}}!"

	want := map[string]string{
		"full_name":    "Full Name",
		"order_number": "Order Number",
	}
	got := placeholder.Extract(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "{{Alpha}} {{beta}} {{Alpha}} {{Gamma Ray}}"

	first := placeholder.Extract(text)
	second := placeholder.Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated extraction differs (-first +second):\n%s", diff)
	}
}

func TestExtractEmptyText(t *testing.T) {
	if got := placeholder.Extract(""); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
	if got := placeholder.Extract("no tokens here"); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestExtractSkipsMalformedTokens(t *testing.T) {
	got := placeholder.Extract("intro {{Name}} trailing {{Oops")

	want := map[string]string{"name": "Name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCollisionKeepsLastLabel(t *testing.T) {
	got := placeholder.Extract("{{First Name}} and {{first   name}}")

	want := map[string]string{"first_name": "first   name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extract mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldID(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"  First Name  ", "first_name"},
		{"Email", "email"},
		{"SHIPPING   ADDRESS", "shipping_address"},
		{"already_snake", "already_snake"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"   ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := placeholder.FieldID(tc.label); got != tc.want {
			t.Errorf("FieldID(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestPairsKeepFirstOccurrenceOrder(t *testing.T) {
	text := "{{Zulu}} {{Alpha}} {{zulu}} {{Mike}}"

	want := []placeholder.Pair{
		{ID: "zulu", Label: "zulu"},
		{ID: "alpha", Label: "Alpha"},
		{ID: "mike", Label: "Mike"},
	}
	got := placeholder.Pairs(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedPairs(t *testing.T) {
	labels := map[string]string{
		"email":     "Email",
		"full_name": "Full Name",
		"age":       "Age",
	}

	want := []placeholder.Pair{
		{ID: "age", Label: "Age"},
		{ID: "email", Label: "Email"},
		{ID: "full_name", Label: "Full Name"},
	}
	got := placeholder.SortedPairs(labels)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted pairs mismatch (-want +got):\n%s", diff)
	}

	if got := placeholder.SortedPairs(nil); got != nil {
		t.Fatalf("expected nil pairs for empty mapping, got %v", got)
	}
}

func TestScanOffsets(t *testing.T) {
	text := "ab {{One}} cd {{ Two Words }}"

	want := []placeholder.Token{
		{ID: "one", Label: "One", Start: 3, End: 10},
		{ID: "two_words", Label: "Two Words", Start: 14, End: 29},
	}
	got := placeholder.Scan(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scan mismatch (-want +got):\n%s", diff)
	}
}
