package model

import internalmodel "github.com/goliatone/go-formfill/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeArray   = internalmodel.FieldTypeArray
)

type Field = internalmodel.Field
type Form = internalmodel.Form
type Response = internalmodel.Response

// Value is the tagged union for submitted answers.
type Value = internalmodel.Value

// ValueKind enumerates the Value variants.
type ValueKind = internalmodel.ValueKind

const (
	KindAbsent   = internalmodel.KindAbsent
	KindString   = internalmodel.KindString
	KindNumber   = internalmodel.KindNumber
	KindSequence = internalmodel.KindSequence
)

// Value constructors.
var (
	AbsentValue   = internalmodel.AbsentValue
	StringValue   = internalmodel.StringValue
	NumberValue   = internalmodel.NumberValue
	BoolValue     = internalmodel.BoolValue
	SequenceValue = internalmodel.SequenceValue
	StringsValue  = internalmodel.StringsValue
	FromAny       = internalmodel.FromAny
)

// Form helpers.
var (
	Labelize        = internalmodel.Labelize
	SyncFields      = internalmodel.SyncFields
	EnsureFields    = internalmodel.EnsureFields
	NormalizeFields = internalmodel.NormalizeFields
	Labels          = internalmodel.Labels
)
