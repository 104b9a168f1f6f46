// Package formfile loads and saves form and response documents.
//
// Documents are JSON or YAML. Parsing tries JSON first and falls back to
// YAML, so files work regardless of extension mismatches. Loaded forms are
// normalized: missing field ids derive from labels, missing labels derive
// from ids, and a form without descriptors gets them extracted from its
// template text.
package formfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfill/internal/model"
)

// LoadForm reads and parses one form document from disk.
func LoadForm(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}

// LoadFormFS reads and parses one form document from the given filesystem.
func LoadFormFS(fsys fs.FS, path string) (model.Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}

// ParseForm decodes a form document and normalizes its field descriptors.
// source names the document in error messages.
func ParseForm(data []byte, source string) (model.Form, error) {
	if isBlank(data) {
		return model.Form{}, fmt.Errorf("formfile: file %s is empty", source)
	}

	var form model.Form
	if err := decode(data, &form); err != nil {
		return model.Form{}, fmt.Errorf("formfile: parse %s: invalid JSON or YAML", source)
	}

	model.NormalizeFields(&form)
	if err := checkDuplicateFields(form, source); err != nil {
		return model.Form{}, err
	}
	model.EnsureFields(&form)

	return form, nil
}

// DecodeForm decodes a form document without normalizing or checking it.
// Most callers want ParseForm; linting tools use the raw decode so they can
// report on documents the strict parser would reject.
func DecodeForm(data []byte, source string) (model.Form, error) {
	if isBlank(data) {
		return model.Form{}, fmt.Errorf("formfile: file %s is empty", source)
	}

	var form model.Form
	if err := decode(data, &form); err != nil {
		return model.Form{}, fmt.Errorf("formfile: parse %s: invalid JSON or YAML", source)
	}
	return form, nil
}

// LoadResponses reads and parses a response document from disk. The
// document may hold a list of responses or a single response object.
func LoadResponses(path string) ([]model.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return ParseResponses(data, path)
}

// LoadResponsesFS reads and parses a response document from the given
// filesystem.
func LoadResponsesFS(fsys fs.FS, path string) ([]model.Response, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return ParseResponses(data, path)
}

// ParseResponses decodes a response document. Lists decode as-is; a single
// response object decodes to a one-element list.
func ParseResponses(data []byte, source string) ([]model.Response, error) {
	if isBlank(data) {
		return nil, fmt.Errorf("formfile: file %s is empty", source)
	}

	var list []model.Response
	if err := decode(data, &list); err == nil {
		return list, nil
	}

	var single model.Response
	if err := decode(data, &single); err == nil {
		return []model.Response{single}, nil
	}

	return nil, fmt.Errorf("formfile: parse %s: invalid JSON or YAML", source)
}

// decode tries JSON first, then YAML. YAML accepts JSON input too, so the
// order only matters for error fidelity.
func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}
	return yaml.Unmarshal(data, out)
}

func checkDuplicateFields(form model.Form, source string) error {
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if _, exists := seen[field.ID]; exists {
			return fmt.Errorf("formfile: form %s defines duplicate field id %q", source, field.ID)
		}
		seen[field.ID] = struct{}{}
	}
	return nil
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
