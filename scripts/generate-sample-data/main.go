// Command generate-sample-data rebuilds the response fixtures under
// examples/fixtures from a form document, so field renames stay in sync
// without hand-editing JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/formfile"
)

var sampleRespondents = []string{
	"ada@example.com",
	"grace@example.com",
	"edsger@example.com",
	"barbara@example.com",
}

func main() {
	var (
		formPath   = flag.String("form", "examples/fixtures/letter.yaml", "form document to sample against")
		outputPath = flag.String("output", "examples/fixtures/responses.json", "output path for the generated responses")
		count      = flag.Int("count", 2, "number of responses to generate")
		stableIDs  = flag.Bool("stable-ids", true, "use r-001 style ids instead of UUIDs")
	)
	flag.Parse()

	form, err := formfile.LoadForm(*formPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load form: %v\n", err)
		os.Exit(1)
	}

	base := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	responses := make([]model.Response, 0, *count)
	for i := 0; i < *count; i++ {
		id := uuid.NewString()
		if *stableIDs {
			id = fmt.Sprintf("r-%03d", i+1)
		}
		responses = append(responses, model.Response{
			ID:          id,
			Respondent:  sampleRespondents[i%len(sampleRespondents)],
			SubmittedAt: base.Add(time.Duration(i) * 95 * time.Minute),
			Data:        sampleData(form, i),
		})
	}

	if err := formfile.SaveResponses(*outputPath, responses); err != nil {
		fmt.Fprintf(os.Stderr, "save responses: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d responses to %s\n", len(responses), *outputPath)
}

// sampleData fills every field with a deterministic answer derived from the
// field type and the response ordinal. Optional fields skip every other
// response so fixtures exercise absent values too.
func sampleData(form model.Form, ordinal int) map[string]model.Value {
	data := make(map[string]model.Value, len(form.Fields))
	for fi, field := range form.Fields {
		if !field.Required && (ordinal+fi)%2 == 1 {
			continue
		}
		data[field.ID] = sampleValue(field, ordinal)
	}
	return data
}

func sampleValue(field model.Field, ordinal int) model.Value {
	if len(field.Enum) > 0 {
		choice := field.Enum[ordinal%len(field.Enum)]
		if field.Type == model.FieldTypeArray {
			return model.StringsValue(choice)
		}
		return model.StringValue(choice)
	}

	switch field.Type {
	case model.FieldTypeNumber:
		if field.Default != "" {
			if f, err := strconv.ParseFloat(field.Default, 64); err == nil {
				return model.NumberValue(f + float64(ordinal))
			}
		}
		return model.NumberValue(float64(ordinal + 1))
	case model.FieldTypeBoolean:
		return model.BoolValue(ordinal%2 == 0)
	case model.FieldTypeArray:
		return model.StringsValue("sample", fmt.Sprintf("item-%d", ordinal+1))
	default:
		return model.StringValue(fmt.Sprintf("Sample %s %d", field.Label, ordinal+1))
	}
}
