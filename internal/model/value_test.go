package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfill/internal/model"
)

func TestValueFormat(t *testing.T) {
	cases := []struct {
		name  string
		value model.Value
		sep   string
		want  string
	}{
		{"absent", model.AbsentValue(), ", ", ""},
		{"zero value", model.Value{}, ", ", ""},
		{"string", model.StringValue("Ada"), ", ", "Ada"},
		{"integer number", model.NumberValue(42), ", ", "42"},
		{"decimal number", model.NumberValue(3.14), ", ", "3.14"},
		{"bool coerced", model.BoolValue(true), ", ", "true"},
		{"sequence render join", model.StringsValue("Red", "Blue"), ", ", "Red, Blue"},
		{"sequence export join", model.StringsValue("Red", "Blue"), "; ", "Red; Blue"},
		{"mixed sequence", model.SequenceValue(model.StringValue("a"), model.NumberValue(7)), ", ", "a, 7"},
		{"empty sequence", model.SequenceValue(), ", ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.Format(tc.sep); got != tc.want {
				t.Fatalf("Format(%q) = %q, want %q", tc.sep, got, tc.want)
			}
		})
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	payload := []byte(`{"name":"Ada","age":36,"subscribed":true,"colors":["Red","Blue"],"notes":null}`)

	var data map[string]model.Value
	if err := json.Unmarshal(payload, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]model.Value{
		"name":       model.StringValue("Ada"),
		"age":        model.NumberValue(36),
		"subscribed": model.StringValue("true"),
		"colors":     model.StringsValue("Red", "Blue"),
		"notes":      model.AbsentValue(),
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("decoded values mismatch (-want +got):\n%s", diff)
	}

	encoded, err := json.Marshal(data["colors"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `["Red","Blue"]` {
		t.Fatalf("unexpected sequence encoding: %s", encoded)
	}
}

func TestValueYAMLDecode(t *testing.T) {
	payload := []byte("answer: true\nscore: 9.5\npicks:\n  - One\n  - Two\n")

	var data map[string]model.Value
	if err := yaml.Unmarshal(payload, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]model.Value{
		"answer": model.StringValue("true"),
		"score":  model.NumberValue(9.5),
		"picks":  model.StringsValue("One", "Two"),
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("decoded values mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want model.Value
	}{
		{"nil", nil, model.AbsentValue()},
		{"string", "hi", model.StringValue("hi")},
		{"bool", false, model.StringValue("false")},
		{"int", 7, model.NumberValue(7)},
		{"float64", 2.5, model.NumberValue(2.5)},
		{"string slice", []string{"a", "b"}, model.StringsValue("a", "b")},
		{"any slice", []any{"a", 1.0}, model.SequenceValue(model.StringValue("a"), model.NumberValue(1))},
		{"fallback", map[string]any{"k": "v"}, model.StringValue("map[k:v]")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.FromAny(tc.in); !got.Equal(tc.want) {
				t.Fatalf("FromAny(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestResponseValueMissingKey(t *testing.T) {
	var resp model.Response
	if got := resp.Value("anything"); !got.IsAbsent() {
		t.Fatalf("expected absent value from nil data, got %v", got)
	}
}
