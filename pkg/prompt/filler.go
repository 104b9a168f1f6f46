// Package prompt captures form responses interactively. A Filler walks the
// form's fields, asks one question per visible field through a PromptDriver
// (survey-backed by default), and assembles the answers into a response
// record ready for rendering or export.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/condition"
)

// Filler drives an interactive fill session.
type Filler struct {
	driver     PromptDriver
	respondent string
	now        func() time.Time
	newID      func() string
}

// New constructs a Filler with defaults: survey driver, wall clock, uuid ids.
func New(opts ...Option) *Filler {
	f := &Filler{
		driver: newSurveyDriver(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill prompts for every visible field and returns the assembled response.
// Fields are derived from the template text when the form declares none.
// Optional fields answered with a blank line stay absent; required fields
// re-prompt until they hold an answer. When rules are evaluated against the
// answers collected so far, so conditions should reference earlier fields.
func (f *Filler) Fill(ctx context.Context, form model.Form) (model.Response, error) {
	if f.driver == nil {
		return model.Response{}, errors.New("prompt: driver is nil")
	}
	model.EnsureFields(&form)

	data := make(map[string]model.Value, len(form.Fields))
	for _, field := range form.Fields {
		if field.When != "" {
			visible, err := condition.Eval(field.When, data)
			if err == nil && !visible {
				continue
			}
		}

		value, err := f.promptField(ctx, field)
		if err != nil {
			return model.Response{}, err
		}
		if value.IsAbsent() {
			continue
		}
		data[field.ID] = value
	}

	return model.Response{
		ID:          f.newID(),
		Respondent:  f.respondent,
		SubmittedAt: f.now(),
		Data:        data,
	}, nil
}

func (f *Filler) promptField(ctx context.Context, field model.Field) (model.Value, error) {
	if err := ctx.Err(); err != nil {
		return model.Value{}, err
	}
	switch {
	case len(field.Enum) > 0 && field.Type == model.FieldTypeArray:
		return f.promptMultiSelect(ctx, field)
	case len(field.Enum) > 0:
		return f.promptSelect(ctx, field)
	case field.Type == model.FieldTypeBoolean:
		return f.promptBoolean(ctx, field)
	case field.Type == model.FieldTypeNumber:
		return f.promptNumber(ctx, field)
	case field.Format == "textarea":
		return f.promptTextArea(ctx, field)
	default:
		return f.promptString(ctx, field)
	}
}

func (f *Filler) promptString(ctx context.Context, field model.Field) (model.Value, error) {
	for {
		answer, err := f.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: field.Default,
			Help:    field.Help,
		})
		if err != nil {
			return model.Value{}, err
		}
		if strings.TrimSpace(answer) == "" {
			if field.Required {
				_ = f.driver.Info(ctx, fmt.Sprintf("%s is required", field.Label))
				continue
			}
			return model.AbsentValue(), nil
		}
		return model.StringValue(answer), nil
	}
}

func (f *Filler) promptTextArea(ctx context.Context, field model.Field) (model.Value, error) {
	for {
		answer, err := f.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label,
			Default: field.Default,
			Help:    field.Help,
		})
		if err != nil {
			return model.Value{}, err
		}
		if strings.TrimSpace(answer) == "" {
			if field.Required {
				_ = f.driver.Info(ctx, fmt.Sprintf("%s is required", field.Label))
				continue
			}
			return model.AbsentValue(), nil
		}
		return model.StringValue(answer), nil
	}
}

func (f *Filler) promptBoolean(ctx context.Context, field model.Field) (model.Value, error) {
	answer, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: field.Label,
		Default: field.Default == "true",
		Help:    field.Help,
	})
	if err != nil {
		return model.Value{}, err
	}
	return model.BoolValue(answer), nil
}

func (f *Filler) promptNumber(ctx context.Context, field model.Field) (model.Value, error) {
	for {
		answer, err := f.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: field.Default,
			Help:    field.Help,
		})
		if err != nil {
			return model.Value{}, err
		}
		trimmed := strings.TrimSpace(answer)
		if trimmed == "" {
			if field.Required {
				_ = f.driver.Info(ctx, fmt.Sprintf("%s is required", field.Label))
				continue
			}
			return model.AbsentValue(), nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			_ = f.driver.Info(ctx, fmt.Sprintf("%s must be a number", field.Label))
			continue
		}
		return model.NumberValue(parsed), nil
	}
}

func (f *Filler) promptSelect(ctx context.Context, field model.Field) (model.Value, error) {
	cfg := SelectConfig{
		Message:      field.Label,
		Options:      field.Enum,
		DefaultIndex: indexOf(field.Enum, field.Default),
		Help:         field.Help,
	}
	for {
		idx, err := f.driver.Select(ctx, cfg)
		if err != nil {
			return model.Value{}, err
		}
		if idx < 0 || idx >= len(field.Enum) {
			_ = f.driver.Info(ctx, fmt.Sprintf("pick one of the %s options", field.Label))
			continue
		}
		return model.StringValue(field.Enum[idx]), nil
	}
}

func (f *Filler) promptMultiSelect(ctx context.Context, field model.Field) (model.Value, error) {
	cfg := SelectConfig{
		Message: field.Label,
		Options: field.Enum,
		Help:    field.Help,
	}
	for {
		indices, err := f.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return model.Value{}, err
		}
		selected := valuesFromIndices(field.Enum, indices)
		if len(selected) == 0 {
			if field.Required {
				_ = f.driver.Info(ctx, fmt.Sprintf("%s needs at least one selection", field.Label))
				continue
			}
			return model.AbsentValue(), nil
		}
		return model.StringsValue(selected...), nil
	}
}
