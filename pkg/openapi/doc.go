// Package openapi derives form definitions from OpenAPI 3 documents. A
// document is loaded from a file, an fs.FS, or raw bytes, parsed with
// kin-openapi, and its operations mapped to forms whose fields mirror the
// request body schema. Consumers never touch kin-openapi types directly.
package openapi
