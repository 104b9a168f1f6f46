package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the variants of the Value union.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindSequence
)

// Value is the tagged union for a single submitted answer: absent, a string
// scalar, a numeric scalar, or an ordered sequence of scalars. Booleans are
// coerced to their plain string form ("true"/"false") when a Value is built
// or decoded, so downstream formatting never special-cases them. The zero
// Value is absent.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	seq  []Value
}

// AbsentValue returns the explicit absent variant. Identical to the zero Value.
func AbsentValue() Value {
	return Value{}
}

// StringValue wraps a string scalar.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue wraps a numeric scalar.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// BoolValue coerces a boolean into its plain string form.
func BoolValue(b bool) Value {
	return StringValue(strconv.FormatBool(b))
}

// SequenceValue builds an ordered sequence from the given elements. Absent
// elements are kept so positional data survives a round trip.
func SequenceValue(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// StringsValue builds a sequence of string scalars, the common multi-select
// shape.
func StringsValue(items ...string) Value {
	seq := make([]Value, 0, len(items))
	for _, item := range items {
		seq = append(seq, StringValue(item))
	}
	return Value{kind: KindSequence, seq: seq}
}

// FromAny coerces an arbitrary decoded payload into the union: nil → absent,
// strings and numbers map directly, booleans take their string form, and
// slices become sequences with each element coerced recursively. Anything
// else (maps, structs) falls back to its fmt representation, keeping the
// conversion total.
func FromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(float64(v))
	case int:
		return NumberValue(float64(v))
	case int32:
		return NumberValue(float64(v))
	case int64:
		return NumberValue(float64(v))
	case uint:
		return NumberValue(float64(v))
	case uint64:
		return NumberValue(float64(v))
	case []string:
		return StringsValue(v...)
	case []any:
		seq := make([]Value, 0, len(v))
		for _, item := range v {
			seq = append(seq, FromAny(item))
		}
		return Value{kind: KindSequence, seq: seq}
	default:
		return StringValue(fmt.Sprint(raw))
	}
}

// Kind reports the active variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether the value carries no answer.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Elements returns a copy of the sequence elements, or nil for scalars and
// absent values.
func (v Value) Elements() []Value {
	if v.kind != KindSequence || len(v.seq) == 0 {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Number reports the numeric scalar when the value holds one.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Format renders the value as text: absent → "", string → itself, number →
// plain decimal notation, sequence → elements joined with sep. The renderer
// joins with ", " and the exporter with "; "; both share this function.
func (v Value) Format(sep string) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindSequence:
		parts := make([]string, 0, len(v.seq))
		for _, item := range v.seq {
			parts = append(parts, item.Format(sep))
		}
		return strings.Join(parts, sep)
	default:
		return ""
	}
}

// String implements fmt.Stringer using the renderer's ", " join.
func (v Value) String() string {
	return v.Format(", ")
}

// Equal reports deep equality between two values. go-cmp picks this up so
// tests can diff structures holding values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON encodes the union into its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.asAny())
}

// UnmarshalJSON decodes any JSON value into the union via FromAny.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	*v = FromAny(raw)
	return nil
}

// MarshalYAML encodes the union into its natural YAML shape.
func (v Value) MarshalYAML() (any, error) {
	return v.asAny(), nil
}

// UnmarshalYAML decodes any YAML node into the union via FromAny.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	*v = FromAny(raw)
	return nil
}

func (v Value) asAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindSequence:
		out := make([]any, 0, len(v.seq))
		for _, item := range v.seq {
			out = append(out, item.asAny())
		}
		return out
	default:
		return nil
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
