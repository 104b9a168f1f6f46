package placeholder

import (
	"fmt"
	"strings"
)

// Collision reports distinct labels whose placeholders normalize to the same
// field identifier. Extraction keeps only the final label, so the earlier
// ones silently lose their values; callers can surface these ahead of time.
type Collision struct {
	ID     string
	Labels []string // distinct labels in first-occurrence order
	Kept   string   // the label extraction keeps (last occurrence)
}

// Issue flags malformed placeholder syntax that extraction silently skips.
type Issue struct {
	Offset  int
	Message string
}

// Duplicates returns the identifier collisions present in the text, in
// first-occurrence order. Repeating the same label is not a collision; only
// differently spelled labels that normalize to one identifier are reported.
func Duplicates(text string) []Collision {
	tokens := Scan(text)
	if len(tokens) == 0 {
		return nil
	}

	type seenLabels struct {
		distinct []string
		last     string
	}

	order := make([]string, 0, len(tokens))
	byID := make(map[string]*seenLabels, len(tokens))
	for _, token := range tokens {
		entry := byID[token.ID]
		if entry == nil {
			entry = &seenLabels{}
			byID[token.ID] = entry
			order = append(order, token.ID)
		}
		if !containsString(entry.distinct, token.Label) {
			entry.distinct = append(entry.distinct, token.Label)
		}
		entry.last = token.Label
	}

	var out []Collision
	for _, id := range order {
		entry := byID[id]
		if len(entry.distinct) < 2 {
			continue
		}
		out = append(out, Collision{
			ID:     id,
			Labels: entry.distinct,
			Kept:   entry.last,
		})
	}
	return out
}

// Lint reports every `{{` run with no closing `}}` anywhere after it. These
// are advisory findings: extraction never fails on them, it just skips the
// malformed token.
func Lint(text string) []Issue {
	var issues []Issue

	from := 0
	for {
		idx := strings.Index(text[from:], "{{")
		if idx < 0 {
			break
		}
		at := from + idx
		if !strings.Contains(text[at+2:], "}}") {
			issues = append(issues, Issue{
				Offset:  at,
				Message: fmt.Sprintf("unclosed placeholder at offset %d: missing }}", at),
			})
		}
		from = at + 2
	}
	return issues
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
