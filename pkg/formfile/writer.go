package formfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfill/internal/model"
)

// Format selects the on-disk document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath derives the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("formfile: unsupported extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// EncodeForm serializes a form document.
func EncodeForm(form model.Form, format Format) ([]byte, error) {
	return encode(form, format)
}

// EncodeResponses serializes a response list document.
func EncodeResponses(responses []model.Response, format Format) ([]byte, error) {
	return encode(responses, format)
}

// SaveForm writes a form document, creating parent directories as needed.
// The format follows the path extension.
func SaveForm(path string, form model.Form) error {
	return save(path, form)
}

// SaveResponses writes a response list document, creating parent directories
// as needed. The format follows the path extension.
func SaveResponses(path string, responses []model.Response) error {
	return save(path, responses)
}

// AppendResponse loads the responses at path, appends resp and writes the
// document back. A missing file starts a new list.
func AppendResponse(path string, resp model.Response) error {
	existing, err := LoadResponses(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return SaveResponses(path, append(existing, resp))
}

func encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("formfile: encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("formfile: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("formfile: unknown format %q", format)
	}
}

func save(path string, v any) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := encode(v, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("formfile: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("formfile: write %s: %w", path, err)
	}
	return nil
}
