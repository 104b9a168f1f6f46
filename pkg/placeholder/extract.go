// Package placeholder implements the `{{Label}}` token grammar shared by the
// template renderer and the response exporter: scanning raw template text for
// tokens and normalizing display labels into the canonical identifiers that
// key response data.
package placeholder

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches two opening braces, one or more non-`}` characters,
// then two closing braces. Matches are found left to right and never overlap.
var (
	tokenPattern   = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Pair couples a canonical field identifier with the display label it was
// derived from.
type Pair struct {
	ID    string
	Label string
}

// Token is a single placeholder occurrence, with byte offsets into the
// scanned text covering the full `{{...}}` span.
type Token struct {
	ID    string
	Label string
	Start int
	End   int
}

// FieldID normalizes a display label into its canonical field identifier:
// surrounding whitespace is trimmed, the result lowercased, and every
// internal whitespace run collapsed to a single underscore.
func FieldID(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ""
	}
	return whitespaceRuns.ReplaceAllString(strings.ToLower(trimmed), "_")
}

// Scan returns every placeholder occurrence in scan order. Text without
// tokens yields nil. Malformed syntax (an unclosed `{{`) is simply not
// matched; Lint reports it separately.
func Scan(text string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, match := range matches {
		label := strings.TrimSpace(text[match[2]:match[3]])
		tokens = append(tokens, Token{
			ID:    FieldID(label),
			Label: label,
			Start: match[0],
			End:   match[1],
		})
	}
	return tokens
}

// Extract returns the id→label mapping for the given template text. When
// several placeholders normalize to the same identifier the label of the
// last occurrence wins; Duplicates surfaces those collisions for callers
// that want to warn instead. Pure function of its input; text without
// placeholders yields an empty mapping.
func Extract(text string) map[string]string {
	pairs := Pairs(text)
	if len(pairs) == 0 {
		return nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		out[pair.ID] = pair.Label
	}
	return out
}

// Pairs returns the extracted mapping as an ordered slice: identifiers in
// first-occurrence order, each carrying the label of its last occurrence.
// The renderer iterates this slice so replacement order is deterministic.
func Pairs(text string) []Pair {
	tokens := Scan(text)
	if len(tokens) == 0 {
		return nil
	}

	index := make(map[string]int, len(tokens))
	pairs := make([]Pair, 0, len(tokens))
	for _, token := range tokens {
		if at, seen := index[token.ID]; seen {
			pairs[at].Label = token.Label
			continue
		}
		index[token.ID] = len(pairs)
		pairs = append(pairs, Pair{ID: token.ID, Label: token.Label})
	}
	return pairs
}

// SortedPairs converts a precomputed id→label mapping into pairs ordered by
// identifier, giving map-shaped inputs a deterministic iteration order.
func SortedPairs(labels map[string]string) []Pair {
	if len(labels) == 0 {
		return nil
	}

	ids := make([]string, 0, len(labels))
	for id := range labels {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pairs := make([]Pair, 0, len(ids))
	for _, id := range ids {
		pairs = append(pairs, Pair{ID: id, Label: labels[id]})
	}
	return pairs
}
