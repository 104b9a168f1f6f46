package placeholder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/pkg/placeholder"
)

func TestDuplicates(t *testing.T) {
	text := "{{First Name}} {{Last Name}} {{first   name}}"

	want := []placeholder.Collision{
		{
			ID:     "first_name",
			Labels: []string{"First Name", "first   name"},
			Kept:   "first   name",
		},
	}
	got := placeholder.Duplicates(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicatesIgnoresRepeatedLabel(t *testing.T) {
	if got := placeholder.Duplicates("{{Name}} then {{Name}} again"); got != nil {
		t.Fatalf("expected no collisions for a repeated label, got %v", got)
	}
}

func TestDuplicatesKeptTracksLastOccurrence(t *testing.T) {
	// The first spelling reappears last, so it wins even though the mapping
	// recorded the second spelling in between.
	got := placeholder.Duplicates("{{Color}} {{COLOR}} {{Color}}")

	want := []placeholder.Collision{
		{
			ID:     "color",
			Labels: []string{"Color", "COLOR"},
			Kept:   "Color",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestLintFlagsUnclosedPlaceholders(t *testing.T) {
	got := placeholder.Lint("Hello {{Name}}, see {{Broken")

	if len(got) != 1 {
		t.Fatalf("expected one issue, got %d: %v", len(got), got)
	}
	if got[0].Offset != 20 {
		t.Fatalf("unexpected offset %d", got[0].Offset)
	}
}

func TestLintCleanText(t *testing.T) {
	if got := placeholder.Lint("Hello {{Name}}, welcome."); got != nil {
		t.Fatalf("expected no issues, got %v", got)
	}
	if got := placeholder.Lint("plain text"); got != nil {
		t.Fatalf("expected no issues, got %v", got)
	}
}

func TestLintFlagsEveryUnclosedRun(t *testing.T) {
	got := placeholder.Lint("{{a {{b")

	if len(got) != 2 {
		t.Fatalf("expected two issues, got %d: %v", len(got), got)
	}
	if got[0].Offset != 0 || got[1].Offset != 4 {
		t.Fatalf("unexpected offsets: %+v", got)
	}
}
