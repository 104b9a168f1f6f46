// Package model exposes the form and response types shared by every stage of
// the pipeline: forms carry a template body plus field descriptors, responses
// carry one answer per field id, and Value is the tagged union those answers
// live in. The implementations reside in internal/model; this package
// re-exports them so callers outside the module get a stable import path.
package model
