package formfill

import "github.com/goliatone/go-formfill/pkg/formfile"

// LoadForm reads a form definition from disk, trying JSON first and YAML as a
// fallback. Loaded forms are normalized: ids derive from labels when omitted
// and fields derive from the template text when none are declared.
func LoadForm(path string) (Form, error) {
	return formfile.LoadForm(path)
}

// LoadResponses reads response records from disk. A single object decodes as
// a one-element list.
func LoadResponses(path string) ([]Response, error) {
	return formfile.LoadResponses(path)
}

// SaveForm writes a form definition; the file extension picks the encoding.
func SaveForm(path string, form Form) error {
	return formfile.SaveForm(path, form)
}

// SaveResponses writes response records; the file extension picks the
// encoding.
func SaveResponses(path string, responses []Response) error {
	return formfile.SaveResponses(path, responses)
}
