package openapi

import "path/filepath"

// Source identifies where an OpenAPI document originates. Loaders switch on
// the kind without caring how the source was constructed.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the supported source modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// fileSource identifies on-disk OpenAPI documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource carries an in-memory document, useful for tests and embedded
// specs.
type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Location() string {
	return s.name
}

func (s bytesSource) Kind() SourceKind {
	return SourceKindBytes
}

func (s bytesSource) payload() []byte {
	return s.data
}

// SourceFromBytes returns a Source wrapping a raw document. The name is used
// in error messages only; empty defaults to "inline".
func SourceFromBytes(name string, data []byte) Source {
	if name == "" {
		name = "inline"
	}
	return bytesSource{name: name, data: data}
}
