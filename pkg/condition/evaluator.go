// Package condition evaluates branching rules against captured response
// data.
//
// Rules are small boolean expressions over field ids:
//
//	subscribed
//	country == "Iceland"
//	rating != 5 && !(plan == "free" || plan == "trial")
//
// Identifiers resolve through the response data map. Absent fields are
// falsy, boolean answers compare through their "true"/"false" string form,
// and comparing a multi-value answer against a literal matches when any
// element matches.
package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfill/internal/model"
)

// Eval evaluates rule against the supplied response data. An empty rule is
// always true.
func Eval(rule string, data map[string]model.Value) (bool, error) {
	node, err := parse(rule)
	if err != nil {
		return false, err
	}
	if node == nil {
		return true, nil
	}
	return node.eval(data), nil
}

// Validate parses rule without evaluating it, so authoring tools can reject
// malformed rules before any response exists.
func Validate(rule string) error {
	_, err := parse(rule)
	return err
}

func parse(rule string) (exprNode, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return nil, nil
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	stream := &tokenStream{tokens: tokens}
	node, err := parseOr(stream)
	if err != nil {
		return nil, err
	}
	if stream.pos < len(stream.tokens) {
		return nil, fmt.Errorf("condition: unexpected token %q", stream.tokens[stream.pos].raw)
	}
	return node, nil
}

type tokenKind int

const (
	tokenIdentifier tokenKind = iota
	tokenString
	tokenNumber
	tokenBool
	tokenNull
	tokenEq
	tokenNeq
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	raw  string
}

func tokenize(input string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(input); {
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(':
			tokens = append(tokens, token{kind: tokenLParen, raw: "("})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokenRParen, raw: ")"})
			i++
		case ch == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, token{kind: tokenNeq, raw: "!="})
				i += 2
				break
			}
			tokens = append(tokens, token{kind: tokenNot, raw: "!"})
			i++
		case ch == '=':
			if i+1 >= len(input) || input[i+1] != '=' {
				return nil, errors.New("condition: unexpected '='; use '=='")
			}
			tokens = append(tokens, token{kind: tokenEq, raw: "=="})
			i += 2
		case ch == '&':
			if i+1 >= len(input) || input[i+1] != '&' {
				return nil, errors.New("condition: unexpected '&'; use '&&'")
			}
			tokens = append(tokens, token{kind: tokenAnd, raw: "&&"})
			i += 2
		case ch == '|':
			if i+1 >= len(input) || input[i+1] != '|' {
				return nil, errors.New("condition: unexpected '|'; use '||'")
			}
			tokens = append(tokens, token{kind: tokenOr, raw: "||"})
			i += 2
		case ch == '"' || ch == '\'':
			value, width, err := scanString(input[i:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenString, raw: value})
			i += width
		default:
			start := i
			for i < len(input) && !isDelimiter(input[i]) {
				i++
			}
			raw := input[start:i]
			switch strings.ToLower(raw) {
			case "true", "false":
				tokens = append(tokens, token{kind: tokenBool, raw: strings.ToLower(raw)})
			case "null", "nil":
				tokens = append(tokens, token{kind: tokenNull, raw: "null"})
			default:
				if looksLikeNumber(raw) {
					tokens = append(tokens, token{kind: tokenNumber, raw: raw})
				} else {
					tokens = append(tokens, token{kind: tokenIdentifier, raw: raw})
				}
			}
		}
	}

	return tokens, nil
}

// scanString consumes a quoted literal at the start of input and returns the
// unquoted value plus the number of bytes consumed.
func scanString(input string) (string, int, error) {
	quote := input[0]
	escaped := false
	for i := 1; i < len(input); i++ {
		c := input[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == quote {
			value, err := strconv.Unquote(`"` + input[1:i] + `"`)
			if err != nil {
				return "", 0, fmt.Errorf("condition: invalid string literal: %w", err)
			}
			return value, i + 1, nil
		}
	}
	return "", 0, errors.New("condition: unterminated string literal")
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '(', ')', '!', '=', '&', '|':
		return true
	default:
		return false
	}
}

func looksLikeNumber(raw string) bool {
	if raw == "" {
		return false
	}
	ch := raw[0]
	return (ch >= '0' && ch <= '9') || ch == '-' || ch == '+'
}

type exprNode interface {
	eval(data map[string]model.Value) bool
}

type exprOr struct {
	left  exprNode
	right exprNode
}

func (n exprOr) eval(data map[string]model.Value) bool {
	return n.left.eval(data) || n.right.eval(data)
}

type exprAnd struct {
	left  exprNode
	right exprNode
}

func (n exprAnd) eval(data map[string]model.Value) bool {
	return n.left.eval(data) && n.right.eval(data)
}

type exprNot struct {
	inner exprNode
}

func (n exprNot) eval(data map[string]model.Value) bool {
	return !n.inner.eval(data)
}

type exprTruthy struct {
	identifier string
}

func (n exprTruthy) eval(data map[string]model.Value) bool {
	return truthy(data[n.identifier])
}

type literalKind int

const (
	litString literalKind = iota
	litNumber
	litBool
	litNull
)

type literal struct {
	kind literalKind
	raw  string
}

type exprCompare struct {
	identifier string
	negate     bool
	literal    literal
}

func (n exprCompare) eval(data map[string]model.Value) bool {
	matched := n.matches(data[n.identifier])
	if n.negate {
		return !matched
	}
	return matched
}

// matches applies any-element semantics for sequences and direct comparison
// for scalars.
func (n exprCompare) matches(value model.Value) bool {
	if elements := value.Elements(); elements != nil {
		for _, element := range elements {
			if n.matchesScalar(element) {
				return true
			}
		}
		return false
	}
	return n.matchesScalar(value)
}

func (n exprCompare) matchesScalar(value model.Value) bool {
	switch n.literal.kind {
	case litNull:
		return value.IsAbsent()
	case litBool:
		return truthy(value) == (n.literal.raw == "true")
	case litNumber:
		want, err := strconv.ParseFloat(n.literal.raw, 64)
		if err != nil {
			return false
		}
		got, ok := coerceNumber(value)
		return ok && got == want
	default:
		return value.String() == n.literal.raw
	}
}

type tokenStream struct {
	tokens []token
	pos    int
}

func parseOr(stream *tokenStream) (exprNode, error) {
	left, err := parseAnd(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenOr) {
		right, err := parseAnd(stream)
		if err != nil {
			return nil, err
		}
		left = exprOr{left: left, right: right}
	}
	return left, nil
}

func parseAnd(stream *tokenStream) (exprNode, error) {
	left, err := parseUnary(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenAnd) {
		right, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		left = exprAnd{left: left, right: right}
	}
	return left, nil
}

func parseUnary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenNot) {
		inner, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		return exprNot{inner: inner}, nil
	}
	return parsePrimary(stream)
}

func parsePrimary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenLParen) {
		inner, err := parseOr(stream)
		if err != nil {
			return nil, err
		}
		if !stream.match(tokenRParen) {
			return nil, errors.New("condition: missing closing ')'")
		}
		return inner, nil
	}

	ident, ok := stream.consume(tokenIdentifier)
	if !ok {
		if stream.pos >= len(stream.tokens) {
			return nil, errors.New("condition: empty expression")
		}
		return nil, fmt.Errorf("condition: expected identifier, got %q", stream.tokens[stream.pos].raw)
	}

	if stream.match(tokenEq) {
		lit, err := stream.consumeLiteral()
		if err != nil {
			return nil, err
		}
		return exprCompare{identifier: ident.raw, literal: lit}, nil
	}
	if stream.match(tokenNeq) {
		lit, err := stream.consumeLiteral()
		if err != nil {
			return nil, err
		}
		return exprCompare{identifier: ident.raw, negate: true, literal: lit}, nil
	}

	return exprTruthy{identifier: ident.raw}, nil
}

func (s *tokenStream) match(kind tokenKind) bool {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return false
	}
	s.pos++
	return true
}

func (s *tokenStream) consume(kind tokenKind) (token, bool) {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return token{}, false
	}
	out := s.tokens[s.pos]
	s.pos++
	return out, true
}

func (s *tokenStream) consumeLiteral() (literal, error) {
	if s.pos >= len(s.tokens) {
		return literal{}, errors.New("condition: missing literal")
	}
	tok := s.tokens[s.pos]
	s.pos++
	switch tok.kind {
	case tokenString:
		return literal{kind: litString, raw: tok.raw}, nil
	case tokenNumber:
		return literal{kind: litNumber, raw: tok.raw}, nil
	case tokenBool:
		return literal{kind: litBool, raw: tok.raw}, nil
	case tokenNull:
		return literal{kind: litNull, raw: "null"}, nil
	case tokenIdentifier:
		// Bare words compare as strings so rules can skip the quotes.
		return literal{kind: litString, raw: tok.raw}, nil
	default:
		return literal{}, fmt.Errorf("condition: expected literal, got %q", tok.raw)
	}
}

// truthy reports whether a value counts as answered-and-affirmative: absent
// values, empty strings, "false", zero and empty sequences are all false.
func truthy(value model.Value) bool {
	switch value.Kind() {
	case model.KindString:
		s := strings.TrimSpace(value.String())
		if parsed, err := strconv.ParseBool(s); err == nil {
			return parsed
		}
		return s != ""
	case model.KindNumber:
		f, _ := value.Number()
		return f != 0
	case model.KindSequence:
		return len(value.Elements()) > 0
	default:
		return false
	}
}

func coerceNumber(value model.Value) (float64, bool) {
	if f, ok := value.Number(); ok {
		return f, true
	}
	if value.Kind() == model.KindString {
		f, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
		return f, err == nil
	}
	return 0, false
}
